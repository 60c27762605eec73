package health

// StatusOK is the only status the health endpoint reports.
const StatusOK = "OK"

// Status is the payload for the health endpoint.
type Status struct {
	Status    string `json:"status" doc:"Service status" example:"OK"`
	Timestamp uint64 `json:"timestamp" doc:"Current time in seconds since the Unix epoch" example:"1705314600"`
}

// Output is the response wrapper for the health endpoint.
type Output struct {
	Body Status
}
