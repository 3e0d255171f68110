//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/sab-ene1/DFT-Tool/internal/webdemo"
)

var (
	engine *webdemo.Engine
	funcs  []js.Func
)

func main() {
	api := js.Global().Get("Object").New()
	api.Set("init", export(func(args []js.Value) any {
		sr := 48000.0
		if len(args) > 0 {
			sr = args[0].Float()
		}
		e, err := webdemo.NewEngine(sr)
		if err != nil {
			return err.Error()
		}
		engine = e
		return js.Null()
	}))

	api.Set("computeDFT", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Null()
		}
		signal := floatsIn(args[0])
		spec := engine.Analyze(signal)

		result := js.Global().Get("Object").New()
		result.Set("magnitudes", floatsOut(spec.Magnitudes))
		result.Set("phases", floatsOut(spec.Phases))
		return result
	}))

	api.Set("magnitudesDB", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Global().Get("Float64Array").New(0)
		}
		return floatsOut(engine.MagnitudesDB(floatsIn(args[0])))
	}))

	api.Set("binFrequencies", export(func(args []js.Value) any {
		if engine == nil || len(args) < 1 {
			return js.Global().Get("Float64Array").New(0)
		}
		return floatsOut(engine.BinFrequencies(args[0].Int()))
	}))

	js.Global().Set("DFTTool", api)
	select {}
}

func floatsIn(arr js.Value) []float64 {
	out := make([]float64, arr.Length())
	for i := range out {
		out[i] = arr.Index(i).Float()
	}
	return out
}

func floatsOut(data []float64) js.Value {
	arr := js.Global().Get("Float64Array").New(len(data))
	for i, v := range data {
		arr.SetIndex(i, v)
	}
	return arr
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}
