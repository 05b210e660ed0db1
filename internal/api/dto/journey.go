package dto

type JourneyStopResponse struct {
	Station int    `json:"station"`
	Name    string `json:"name"`
}

type JourneyResponse struct {
	Found           bool                  `json:"found"`
	Date            string                `json:"date,omitempty"`
	Stops           []JourneyStopResponse `json:"stops,omitempty"`
	TotalTravelTime int                   `json:"total_travel_time"`
}

type NeighboursResponse struct {
	Station    int                   `json:"station"`
	Hops       int                   `json:"hops"`
	Neighbours []JourneyStopResponse `json:"neighbours"`
}
