// Package scene loads the demo driver's scene files: a grid literal plus
// start/goal markers and optional per-scene overrides, encoded as HuJSON
// (JSON with comments and trailing commas tolerated) the same way the
// teacher's top-level config loads .tk.json.
package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/tailscale/hujson"

	"github.com/cloudwu/pathfinding/internal/grid"
)

// Scene is a parsed .scene.hujson file.
type Scene struct {
	// Map is the ASCII grid literal: '#' walls, 'S' start, 'G' goal.
	Map string `json:"map"`

	// Capacity optionally overrides the engine's table capacity hint. Zero
	// means "let Size derive one from the grid's extent".
	Capacity uint64 `json:"capacity,omitempty"`

	// BudgetFraction optionally overrides the exhaustion-budget fraction
	// (spec's Cap/2 default). Zero means "use the engine default".
	BudgetFraction float64 `json:"budget_fraction,omitempty"`
}

var (
	errSceneFileRead  = errors.New("scene: cannot read scene file")
	errSceneInvalid   = errors.New("scene: invalid scene file")
	errSceneEmptyMap  = errors.New("scene: map is empty")
	errBudgetFraction = errors.New("scene: budget_fraction must be in (0, 1]")
)

// Load reads and parses a scene file from path.
func Load(path string) (Scene, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is intentionally user-controlled
	if err != nil {
		return Scene{}, fmt.Errorf("%w: %s: %w", errSceneFileRead, path, err)
	}

	return Parse(data)
}

// Parse decodes a HuJSON scene document.
func Parse(data []byte) (Scene, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Scene{}, fmt.Errorf("%w: %w", errSceneInvalid, err)
	}

	var sc Scene

	if err := json.Unmarshal(standardized, &sc); err != nil {
		return Scene{}, fmt.Errorf("%w: %w", errSceneInvalid, err)
	}

	if err := validate(sc); err != nil {
		return Scene{}, err
	}

	return sc, nil
}

func validate(sc Scene) error {
	if sc.Map == "" {
		return errSceneEmptyMap
	}

	if sc.BudgetFraction != 0 && (sc.BudgetFraction <= 0 || sc.BudgetFraction > 1) {
		return fmt.Errorf("%w: got %v", errBudgetFraction, sc.BudgetFraction)
	}

	return nil
}

// Grid parses the scene's map literal into a grid.Grid.
func (sc Scene) Grid() (*grid.Grid, error) {
	g, err := grid.Parse(sc.Map)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}

	return g, nil
}
