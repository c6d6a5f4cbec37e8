package api

// GenerateResponse is the successful response of POST /api/generate.
type GenerateResponse struct {
	Text string `json:"text"`
}

// InfoResponse describes the service on the root path when no static index
// page is served there.
type InfoResponse struct {
	Service    string `json:"service"`
	Endpoint   string `json:"endpoint"`
	Provider   string `json:"provider"`
	Configured bool   `json:"configured"`
}
