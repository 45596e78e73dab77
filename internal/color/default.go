package color

// The default catalog ships five ramp sets covering the neutral and status
// hues every built-in theme draws from. The data is process-wide constant:
// Default returns the same instance every time and nothing may mutate it.

// DefaultSetNames lists the ramp sets of the default catalog in catalog order.
var DefaultSetNames = []string{"gray", "red", "green", "blue", "yellow"}

var defaultCatalog = buildDefaultCatalog()

// Default returns the built-in catalog with the gray, red, green, blue, and
// yellow ramp sets. The returned catalog is shared and must not be modified;
// families layer their own catalogs over it with Merge instead.
func Default() *Catalog {
	return defaultCatalog
}

func buildDefaultCatalog() *Catalog {
	catalog := NewCatalog()
	for _, def := range []struct {
		name string
		hue  float64
		sat  float64
	}{
		{"gray", 0, 0},
		{"red", 0, 0.78},
		{"green", 0.36, 0.62},
		{"blue", 0.59, 0.82},
		{"yellow", 0.13, 0.9},
	} {
		set, err := NewRampSet(
			def.name,
			solidRamp(def.hue, def.sat, Light),
			solidRamp(def.hue, def.sat, Dark),
			transparentRamp(def.hue, def.sat, Light),
			transparentRamp(def.hue, def.sat, Dark),
		)
		if err != nil {
			panic(err)
		}
		if err := catalog.Add(set); err != nil {
			panic(err)
		}
	}
	return catalog
}

// rampLightness holds the twelve lightness stops of a light ramp, lightest
// first. Dark ramps use the same stops reversed.
var rampLightness = [RampLen]float64{
	0.99, 0.98, 0.95, 0.91, 0.86, 0.80, 0.72, 0.62, 0.50, 0.42, 0.30, 0.12,
}

// rampAlpha holds the alpha stops of the transparent ramps, most transparent
// first on the light ramp.
var rampAlpha = [RampLen]float64{
	0.02, 0.04, 0.08, 0.14, 0.20, 0.28, 0.38, 0.50, 0.65, 0.75, 0.88, 0.96,
}

func solidRamp(hue, sat float64, appearance Appearance) Ramp {
	var ramp Ramp
	for i := 0; i < RampLen; i++ {
		step := i
		if appearance == Dark {
			step = RampLen - 1 - i
		}
		ramp[i] = New(hue, sat, rampLightness[step], 1)
	}
	return ramp
}

func transparentRamp(hue, sat float64, appearance Appearance) Ramp {
	var ramp Ramp
	for i := 0; i < RampLen; i++ {
		step := i
		if appearance == Dark {
			step = RampLen - 1 - i
		}
		ramp[i] = New(hue, sat, rampLightness[step], rampAlpha[i])
	}
	return ramp
}
