package hello

// Message is the fixed greeting text.
const Message = "Hello from Rust!"

// Greeting models the response payload. Name is null when the request had no
// name parameter.
type Greeting struct {
	Message string  `json:"message" doc:"Greeting message" example:"Hello from Rust!"`
	Name    *string `json:"name" doc:"Name from the query string, or null" example:"Ferris"`
}

// GetOutput is the response wrapper for GET /hello.
type GetOutput struct {
	Body Greeting
}
