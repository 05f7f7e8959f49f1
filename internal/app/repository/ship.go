package repository

import (
	"github.com/google/uuid"

	"ship_tracker/internal/app/ds"
)

// defaultSpeed is stored when a ship is created without a speed field; the
// stored value must always be positive.
const defaultSpeed = 1.0

func (r *Repository) GetShips() []ds.Ship {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ships := make([]ds.Ship, 0, len(r.ships))
	for _, ship := range r.ships {
		ships = append(ships, ship)
	}
	return ships
}

func (r *Repository) GetShip(id string) (ds.Ship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ship, ok := r.ships[id]
	if !ok {
		return ds.Ship{}, ds.ErrShipNotFound
	}
	return ship, nil
}

// CreateShip - validates the payload, assigns a fresh id and stores the ship.
// Presence of every base field is checked before any value is coerced, so the
// missing-field message always names the first absent field.
func (r *Repository) CreateShip(payload ds.ShipPayload) (ds.Ship, error) {
	if payload.Name == nil {
		return ds.Ship{}, ds.NewValidationError("Missing required field: name")
	}

	coords := []struct {
		field string
		value ds.Float
	}{
		{"position_x", payload.PositionX},
		{"position_y", payload.PositionY},
		{"destination_x", payload.DestinationX},
		{"destination_y", payload.DestinationY},
	}
	for _, c := range coords {
		if !c.value.Defined() {
			return ds.Ship{}, ds.NewValidationError("Missing required field: " + c.field)
		}
	}
	for _, c := range coords {
		if !c.value.Valid() {
			return ds.Ship{}, ds.NewValidationError("Invalid data format")
		}
	}

	speed := defaultSpeed
	if payload.Speed.Defined() {
		if !payload.Speed.Valid() {
			return ds.Ship{}, ds.NewValidationError("Invalid speed format")
		}
		if payload.Speed.Value() <= 0 {
			return ds.Ship{}, ds.NewValidationError("Speed must be greater than 0")
		}
		speed = payload.Speed.Value()
	}

	ship := ds.Ship{
		ID:           uuid.New().String(),
		Name:         *payload.Name,
		PositionX:    payload.PositionX.Value(),
		PositionY:    payload.PositionY.Value(),
		DestinationX: payload.DestinationX.Value(),
		DestinationY: payload.DestinationY.Value(),
		Speed:        speed,
	}

	r.mu.Lock()
	r.ships[ship.ID] = ship
	r.mu.Unlock()

	return ship, nil
}

// UpdateShip - applies the fields present in the payload to an existing ship.
// Validation runs against a copy, so a rejected payload never leaves a
// half-updated record behind. An empty payload returns the ship unchanged.
func (r *Repository) UpdateShip(id string, payload ds.ShipPayload) (ds.Ship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ship, ok := r.ships[id]
	if !ok {
		return ds.Ship{}, ds.ErrShipNotFound
	}

	if payload.Name != nil {
		ship.Name = *payload.Name
	}

	updates := []struct {
		value ds.Float
		dst   *float64
	}{
		{payload.PositionX, &ship.PositionX},
		{payload.PositionY, &ship.PositionY},
		{payload.DestinationX, &ship.DestinationX},
		{payload.DestinationY, &ship.DestinationY},
	}
	for _, u := range updates {
		if !u.value.Defined() {
			continue
		}
		if !u.value.Valid() {
			return ds.Ship{}, ds.NewValidationError("Invalid data format")
		}
		*u.dst = u.value.Value()
	}

	if payload.Speed.Defined() {
		if !payload.Speed.Valid() {
			return ds.Ship{}, ds.NewValidationError("Invalid speed format")
		}
		if payload.Speed.Value() <= 0 {
			return ds.Ship{}, ds.NewValidationError("Speed must be greater than 0")
		}
		ship.Speed = payload.Speed.Value()
	}

	r.ships[id] = ship
	return ship, nil
}

func (r *Repository) DeleteShip(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.ships[id]; !ok {
		return ds.ErrShipNotFound
	}
	delete(r.ships, id)
	return nil
}

// MoveShip - overwrites the current position. Both coordinates must be
// present and numeric; the destination is untouched.
func (r *Repository) MoveShip(id string, coords ds.CoordsPayload) (ds.Ship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ship, ok := r.ships[id]
	if !ok {
		return ds.Ship{}, ds.ErrShipNotFound
	}

	if !coords.X.Defined() || !coords.Y.Defined() {
		return ds.Ship{}, ds.NewValidationError("Missing x or y coordinates")
	}
	if !coords.X.Valid() || !coords.Y.Valid() {
		return ds.Ship{}, ds.NewValidationError("Invalid coordinate format")
	}

	ship.PositionX = coords.X.Value()
	ship.PositionY = coords.Y.Value()
	r.ships[id] = ship
	return ship, nil
}

// SetDestination - same contract as MoveShip, targeting the destination pair.
func (r *Repository) SetDestination(id string, coords ds.CoordsPayload) (ds.Ship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ship, ok := r.ships[id]
	if !ok {
		return ds.Ship{}, ds.ErrShipNotFound
	}

	if !coords.X.Defined() || !coords.Y.Defined() {
		return ds.Ship{}, ds.NewValidationError("Missing x or y coordinates")
	}
	if !coords.X.Valid() || !coords.Y.Valid() {
		return ds.Ship{}, ds.NewValidationError("Invalid coordinate format")
	}

	ship.DestinationX = coords.X.Value()
	ship.DestinationY = coords.Y.Value()
	r.ships[id] = ship
	return ship, nil
}

// SetSpeed - overwrites the speed. Zero and negative values are rejected
// with a dedicated message, distinct from missing and malformed input.
func (r *Repository) SetSpeed(id string, payload ds.SpeedPayload) (ds.Ship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ship, ok := r.ships[id]
	if !ok {
		return ds.Ship{}, ds.ErrShipNotFound
	}

	if !payload.Speed.Defined() {
		return ds.Ship{}, ds.NewValidationError("Missing speed parameter")
	}
	if !payload.Speed.Valid() {
		return ds.Ship{}, ds.NewValidationError("Invalid speed format")
	}
	if payload.Speed.Value() <= 0 {
		return ds.Ship{}, ds.NewValidationError("Speed must be greater than 0")
	}

	ship.Speed = payload.Speed.Value()
	r.ships[id] = ship
	return ship, nil
}
