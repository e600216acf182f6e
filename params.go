package loupe

import (
	"errors"
	"fmt"
)

// ParamKind identifies the value type of a host-visible parameter.
type ParamKind int

const (
	// ParamBool is a boolean parameter. It reads back as 0 or 1; on set,
	// values ≥ 0.5 mean true.
	ParamBool ParamKind = iota
	// ParamDouble is a scalar parameter, host-normalized to [0, 1].
	ParamDouble
)

// ParamInfo describes one host-visible parameter.
type ParamInfo struct {
	// Name is the human-readable parameter name.
	Name string
	// Explanation describes the parameter for the host UI.
	Explanation string
	// Kind is the parameter's value type.
	Kind ParamKind
}

// ErrParamIndex is returned for parameter indices outside
// [0, ParamCount()).
var ErrParamIndex = errors.New("loupe: parameter index out of range")

// param binds a ParamInfo to accessors over the configuration.
type param struct {
	info ParamInfo
	get  func(c *Config) float64
	set  func(c *Config, v float64)
}

// registerParams builds the ordered parameter list: the global parameters
// first, then one block per region. The order is part of the host contract
// and must stay stable.
func (f *Filter) registerParams() {
	f.registerBool("Wire Frame",
		"Show wire frame for positioning.",
		func(c *Config) *bool { return &c.ShowWireframe })
	f.registerBool("Show Magnified",
		"Show magnified region.",
		func(c *Config) *bool { return &c.ShowMagnified })
	f.registerDouble("Outline Width",
		"The width of the outline drawn around the magnified region (in 100 pixels at 1080p).",
		func(c *Config) *float64 { return &c.OutlineWidth })
	f.registerDouble("Pointer Width",
		"The width of the pointer line (in 100 pixels at 1080p).",
		func(c *Config) *float64 { return &c.PointerWidth })
	f.registerDouble("Pointer Outline Width",
		"The width of the pointer bubble outline (in 100 pixels at 1080p).",
		func(c *Config) *float64 { return &c.PointerOutlineWidth })
	f.registerDouble("Fade Duration",
		"The duration of the fade in/out (in 10 seconds).",
		func(c *Config) *float64 { return &c.FadeDuration })
	f.registerDouble("End Time",
		"The time after which the image should be back to normal (in 1000 seconds).",
		func(c *Config) *float64 { return &c.EndTime })

	for i := range f.config.Regions {
		i := i
		f.registerBool(fmt.Sprintf("Enable region %d", i),
			"Enable another magnification region.",
			func(c *Config) *bool { return &c.Regions[i].Enabled })
		f.registerDouble("Source Center X",
			"The center of the source rectangle.",
			func(c *Config) *float64 { return &c.Regions[i].SrcCenter.X })
		f.registerDouble("Source Center Y",
			"The center of the source rectangle.",
			func(c *Config) *float64 { return &c.Regions[i].SrcCenter.Y })
		f.registerDouble("Source Size X",
			"The size of the source rectangle.",
			func(c *Config) *float64 { return &c.Regions[i].SrcSize.X })
		f.registerDouble("Source Size Y",
			"The size of the source rectangle.",
			func(c *Config) *float64 { return &c.Regions[i].SrcSize.Y })
		f.registerDouble("Destination Center X",
			"The center of the destination rectangle.",
			func(c *Config) *float64 { return &c.Regions[i].DstCenter.X })
		f.registerDouble("Destination Center Y",
			"The center of the destination rectangle.",
			func(c *Config) *float64 { return &c.Regions[i].DstCenter.Y })
		f.registerDouble("Destination Zoom",
			"The magnification factor of the destination.",
			func(c *Config) *float64 { return &c.Regions[i].DstZoom })
	}
}

func (f *Filter) registerBool(name, explanation string, field func(*Config) *bool) {
	f.params = append(f.params, param{
		info: ParamInfo{Name: name, Explanation: explanation, Kind: ParamBool},
		get: func(c *Config) float64 {
			if *field(c) {
				return 1
			}
			return 0
		},
		set: func(c *Config, v float64) {
			*field(c) = v >= 0.5
		},
	})
}

func (f *Filter) registerDouble(name, explanation string, field func(*Config) *float64) {
	f.params = append(f.params, param{
		info: ParamInfo{Name: name, Explanation: explanation, Kind: ParamDouble},
		get:  func(c *Config) float64 { return *field(c) },
		set:  func(c *Config, v float64) { *field(c) = v },
	})
}

// ParamCount returns the number of host-visible parameters.
func (f *Filter) ParamCount() int {
	return len(f.params)
}

// Param returns the descriptor of the parameter at index.
func (f *Filter) Param(index int) (ParamInfo, error) {
	if index < 0 || index >= len(f.params) {
		return ParamInfo{}, ErrParamIndex
	}
	return f.params[index].info, nil
}

// SetParamValue stores a normalized value into the parameter at index.
func (f *Filter) SetParamValue(index int, value float64) error {
	if index < 0 || index >= len(f.params) {
		return ErrParamIndex
	}
	f.params[index].set(&f.config, value)
	return nil
}

// ParamValue returns the normalized value of the parameter at index.
func (f *Filter) ParamValue(index int) (float64, error) {
	if index < 0 || index >= len(f.params) {
		return 0, ErrParamIndex
	}
	return f.params[index].get(&f.config), nil
}
