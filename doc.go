/*
Package paramlink is a slider control that binds, at runtime, to a numeric parameter
exposed by another object in a live host scene.

The user picks the parameter through a three-level cascade (Target object, then one of
its sub-components, then one of that sub-component's numeric parameters). Once the chain
resolves, the local slider mirrors the parameter's bounds and every edit is written
through to it. The control owns at most one on-screen widget, acquired on Enable and
released on Disable or Destroy.

# Concept

The host (object registry, scene graph, widget factory, error sink) is injected through
the interfaces in pkg/ports. Every public operation is a failure boundary: errors are
reported to the host's error sink and swallowed, and a failed step leaves the control in
its last valid configuration.

# Usage

	scene := memory.NewScene()
	reg := memory.NewRegistry()
	reg.Add("lamp", memory.NewObject().
		With("light", memory.NewSubComponent().
			With("intensity", memory.NewParameter(1, 0, 2, true))))

	ctl := paramlink.New(scene.Attachment, paramlink.Host{
		Registry: reg,
		Widgets:  memory.NewWidgetFactory(),
		Errors:   memory.NewErrorSink(),
	})
	defer ctl.Destroy()

	ctl.SelectTarget("lamp")
	ctl.SelectSubTarget("light")
	ctl.SelectParameter("intensity")
	ctl.SetValue(1.5) // written through to lamp/light/intensity
*/
package paramlink
