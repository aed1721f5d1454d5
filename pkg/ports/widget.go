package ports

import "github.com/aretw0/paramlink/pkg/domain"

// WidgetFactory instantiates slider widgets on a surface.
type WidgetFactory interface {
	// InstantiateSlider returns a new widget attached to the surface, or nil
	// if the factory cannot produce one.
	InstantiateSlider(surface Surface) Widget
}

// Widget is one on-screen slider instance.
type Widget interface {
	Configure(cfg domain.WidgetConfig)
	SetLabel(label string)

	// Control returns the interactive slider capability.
	Control() (SliderControl, bool)

	Translate(offset domain.Offset)
	Destroy()
}

// SliderControl is the interactive part of a slider widget.
type SliderControl interface {
	// SetValue moves the slider. It must not invoke the connected handler.
	SetValue(v float64)

	// Connect routes user edits to onChange. A later Connect replaces it.
	Connect(onChange func(v float64))

	Disconnect()
}
