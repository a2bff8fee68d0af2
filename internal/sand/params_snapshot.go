package sand

import (
	"strconv"

	"sandfall/internal/core"
)

// Parameters reports the world settings and current material census.
func (w *World) Parameters() core.ParameterSnapshot {
	census := w.grid.Census()
	counts := make([]core.Parameter, 0, kindCount-1)
	for _, k := range Kinds()[1:] {
		counts = append(counts, intParam("count_"+k.String(), k.String(), census.Count(k)))
	}
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.seed),
				intParam("tick", "Tick", w.ticks),
			},
		},
		{
			Name: "Brush",
			Params: []core.Parameter{
				intParam("brush", "Brush radius", w.cfg.BrushRadius),
			},
		},
		{
			Name:    "Census",
			Params:  counts,
			Summary: strconv.Itoa(census.Total()) + " particles",
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the HUD-adjustable settings.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{
			Key:    "brush",
			Label:  "Brush radius",
			Type:   core.ParamTypeInt,
			Step:   1,
			Min:    0,
			Max:    MaxBrushRadius,
			HasMin: true,
			HasMax: true,
		},
	}
}

// SetIntParameter updates an integer setting, clamping to its bounds.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "brush":
		w.cfg.BrushRadius = max(0, min(value, MaxBrushRadius))
		return true
	}
	return false
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}
