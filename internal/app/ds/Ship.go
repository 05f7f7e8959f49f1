package ds

// @Schema(description="Ship model with current position, destination and speed")
type Ship struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	PositionX    float64 `json:"position_x"`
	PositionY    float64 `json:"position_y"`
	DestinationX float64 `json:"destination_x"`
	DestinationY float64 `json:"destination_y"`
	Speed        float64 `json:"speed"`
}

// ShipPayload - body of POST /ships and PUT /ships/:id. Fields left out of
// the request stay in their zero state, so omitted keys are distinguishable
// from keys sent with a bad value.
type ShipPayload struct {
	Name         *string `json:"name"`
	PositionX    Float   `json:"position_x"`
	PositionY    Float   `json:"position_y"`
	DestinationX Float   `json:"destination_x"`
	DestinationY Float   `json:"destination_y"`
	Speed        Float   `json:"speed"`
}

// CoordsPayload - body of the move and destination endpoints.
type CoordsPayload struct {
	X Float `json:"x"`
	Y Float `json:"y"`
}

// SpeedPayload - body of the speed endpoint.
type SpeedPayload struct {
	Speed Float `json:"speed"`
}
