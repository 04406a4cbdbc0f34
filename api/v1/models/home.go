package models

// HomeResponse is the payload served at the root path.
type HomeResponse struct {
	Message string `json:"message"`
	Build   string `json:"build"`
	Status  string `json:"status"`
}
