package fatinspect

//go:generate go run ./cmd/generate
