package dto

type StationResponse struct {
	Index     int     `json:"index"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ListStationsResponse struct {
	Stations []StationResponse `json:"stations"`
}
