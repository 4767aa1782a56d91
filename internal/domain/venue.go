package domain

type Venue struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
	Address  string `json:"address"`

	Events []Event `json:"events,omitempty"`
}
