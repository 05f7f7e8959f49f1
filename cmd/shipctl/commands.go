package main

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"ship_tracker/internal/app/ds"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all ships",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var ships []ds.Ship
		client := newAPIClient(baseURL)
		if err := client.request(cmd.Context(), http.MethodGet, "/ships", nil, &ships); err != nil {
			return err
		}

		if len(ships) == 0 {
			fmt.Println("No ships found.")
			return nil
		}

		fmt.Printf("%-36s %-20s %-15s %-15s\n", "ID", "Name", "Position", "Destination")
		fmt.Println(strings.Repeat("-", 86))
		for _, ship := range ships {
			pos := fmt.Sprintf("(%.1f, %.1f)", ship.PositionX, ship.PositionY)
			dest := fmt.Sprintf("(%.1f, %.1f)", ship.DestinationX, ship.DestinationY)
			fmt.Printf("%-36s %-20s %-15s %-15s\n", ship.ID, ship.Name, pos, dest)
		}
		return nil
	},
}

var getCmd = &cobra.Command{
	Use:   "get <ship-id>",
	Short: "Get ship details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ship ds.Ship
		client := newAPIClient(baseURL)
		if err := client.request(cmd.Context(), http.MethodGet, "/ships/"+args[0], nil, &ship); err != nil {
			return err
		}

		fmt.Println("Ship Details:")
		fmt.Printf("  ID: %s\n", ship.ID)
		fmt.Printf("  Name: %s\n", ship.Name)
		fmt.Printf("  Position: (%g, %g)\n", ship.PositionX, ship.PositionY)
		fmt.Printf("  Destination: (%g, %g)\n", ship.DestinationX, ship.DestinationY)
		fmt.Printf("  Speed: %g\n", ship.Speed)
		return nil
	},
}

var createSpeed float64

var createCmd = &cobra.Command{
	Use:   "create <name> <pos-x> <pos-y> <dest-x> <dest-y>",
	Short: "Create a new ship",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := parseFloats(args[1:])
		if err != nil {
			return err
		}

		payload := map[string]any{
			"name":          args[0],
			"position_x":    coords[0],
			"position_y":    coords[1],
			"destination_x": coords[2],
			"destination_y": coords[3],
		}
		if cmd.Flags().Changed("speed") {
			payload["speed"] = createSpeed
		}

		var ship ds.Ship
		client := newAPIClient(baseURL)
		if err := client.request(cmd.Context(), http.MethodPost, "/ships", payload, &ship); err != nil {
			return err
		}

		fmt.Printf("Ship '%s' created successfully with ID: %s\n", ship.Name, ship.ID)
		return nil
	},
}

var updateFields = struct {
	name  string
	posX  float64
	posY  float64
	destX float64
	destY float64
	speed float64
}{}

var updateCmd = &cobra.Command{
	Use:   "update <ship-id>",
	Short: "Update ship details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := map[string]any{}
		if cmd.Flags().Changed("name") {
			payload["name"] = updateFields.name
		}
		if cmd.Flags().Changed("pos-x") {
			payload["position_x"] = updateFields.posX
		}
		if cmd.Flags().Changed("pos-y") {
			payload["position_y"] = updateFields.posY
		}
		if cmd.Flags().Changed("dest-x") {
			payload["destination_x"] = updateFields.destX
		}
		if cmd.Flags().Changed("dest-y") {
			payload["destination_y"] = updateFields.destY
		}
		if cmd.Flags().Changed("speed") {
			payload["speed"] = updateFields.speed
		}

		if len(payload) == 0 {
			fmt.Println("No update fields provided.")
			return nil
		}

		var ship ds.Ship
		client := newAPIClient(baseURL)
		if err := client.request(cmd.Context(), http.MethodPut, "/ships/"+args[0], payload, &ship); err != nil {
			return err
		}

		fmt.Printf("Ship '%s' updated successfully.\n", ship.Name)
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <ship-id>",
	Short: "Delete a ship",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var result struct {
			Message string `json:"message"`
		}
		client := newAPIClient(baseURL)
		if err := client.request(cmd.Context(), http.MethodDelete, "/ships/"+args[0], nil, &result); err != nil {
			return err
		}

		fmt.Println(result.Message)
		return nil
	},
}

var moveCmd = &cobra.Command{
	Use:   "move <ship-id> <x> <y>",
	Short: "Move ship to new position",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := parseFloats(args[1:])
		if err != nil {
			return err
		}

		var ship ds.Ship
		client := newAPIClient(baseURL)
		payload := map[string]any{"x": coords[0], "y": coords[1]}
		if err := client.request(cmd.Context(), http.MethodPost, "/ships/"+args[0]+"/move", payload, &ship); err != nil {
			return err
		}

		fmt.Printf("Ship '%s' moved to position (%g, %g)\n", ship.Name, coords[0], coords[1])
		return nil
	},
}

var destinationCmd = &cobra.Command{
	Use:   "destination <ship-id> <x> <y>",
	Short: "Set ship destination",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := parseFloats(args[1:])
		if err != nil {
			return err
		}

		var ship ds.Ship
		client := newAPIClient(baseURL)
		payload := map[string]any{"x": coords[0], "y": coords[1]}
		if err := client.request(cmd.Context(), http.MethodPost, "/ships/"+args[0]+"/destination", payload, &ship); err != nil {
			return err
		}

		fmt.Printf("Ship '%s' destination set to (%g, %g)\n", ship.Name, coords[0], coords[1])
		return nil
	},
}

var speedCmd = &cobra.Command{
	Use:   "speed <ship-id> <speed>",
	Short: "Set ship speed",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid speed value: %s", args[1])
		}

		var ship ds.Ship
		client := newAPIClient(baseURL)
		payload := map[string]any{"speed": value}
		if err := client.request(cmd.Context(), http.MethodPost, "/ships/"+args[0]+"/speed", payload, &ship); err != nil {
			return err
		}

		fmt.Printf("Ship '%s' speed set to %g\n", ship.Name, ship.Speed)
		return nil
	},
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check API health",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		var health struct {
			Status     string `json:"status"`
			ShipsCount int    `json:"ships_count"`
		}
		client := newAPIClient(baseURL)
		if err := client.request(cmd.Context(), http.MethodGet, "/health", nil, &health); err != nil {
			return err
		}

		fmt.Printf("API Status: %s\n", health.Status)
		fmt.Printf("Ships Count: %d\n", health.ShipsCount)
		return nil
	},
}

func init() {
	createCmd.Flags().Float64Var(&createSpeed, "speed", 0, "Initial speed (defaults to 1.0 server-side)")

	updateCmd.Flags().StringVar(&updateFields.name, "name", "", "New ship name")
	updateCmd.Flags().Float64Var(&updateFields.posX, "pos-x", 0, "New position X")
	updateCmd.Flags().Float64Var(&updateFields.posY, "pos-y", 0, "New position Y")
	updateCmd.Flags().Float64Var(&updateFields.destX, "dest-x", 0, "New destination X")
	updateCmd.Flags().Float64Var(&updateFields.destY, "dest-y", 0, "New destination Y")
	updateCmd.Flags().Float64Var(&updateFields.speed, "speed", 0, "New speed")
}

func parseFloats(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseFloat(arg, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid numeric value: %s", arg)
		}
		values[i] = v
	}
	return values, nil
}
