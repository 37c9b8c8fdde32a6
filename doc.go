// Package backdrop is an animated branch-line background for [Ebitengine].
//
// A handful of colored polylines ("branches") drift slowly across the
// canvas. Their points flinch away from the cursor: near it they are pushed
// hard, very near it they jump to the closest edge of the viewport. Every
// point keeps a minimum speed on each axis, so the scene never settles.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	bg := backdrop.NewBackground(backdrop.DefaultConfig())
//	backdrop.Run(bg, backdrop.RunConfig{
//		Title: "Branches", Resizable: true,
//	})
//
// [Background] implements [ebiten.Game], so it can also be driven by your own
// loop or embedded in another game by calling Update, Draw and Layout.
//
// # Headless use
//
// The simulation does not depend on a window. [NewScene] and
// [Kinematics.Step] can be used directly with a seeded [Rand]:
//
//	rng := backdrop.NewRand(42)
//	scene := backdrop.NewScene(800, 600, backdrop.DefaultSceneConfig(), rng)
//	kin := backdrop.DefaultKinematics()
//	scene.Cursor.Move(400, 300)
//	for range 60 {
//		kin.Step(scene, rng)
//	}
//
// [Snapshot] rasterizes a frame on the CPU (via golang.org/x/image/vector)
// and [WriteSVG] exports it as SVG (via [svgo]).
//
// # Testing
//
// [Background.InjectMove] and [Background.InjectLeave] queue synthetic
// pointer events consumed one per frame; [LoadTestScript] sequences them with
// waits, resizes and screenshots from a JSON script.
//
// [Ebitengine]: https://ebitengine.org
// [svgo]: https://github.com/ajstarks/svgo
package backdrop
