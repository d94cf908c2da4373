// Package iconset renders application icons for Android, iOS, macOS and
// the web from a few procedural drawing rules, or from a master logo.
//
// # Overview
//
// An icon is composed in a fixed order:
//
//	background (Solid, GradientFill or ImageFill)
//	  -> glyph layer (Shield, Diamond, Key or Lock) composited on top
//	  -> rounded mask written as the alpha channel
//
// Every canvas is square, allocated per icon and discarded after it is
// written; nothing is cached between sizes.
//
// # Quick Start
//
//	layers := iconset.Layers{
//	    Background: iconset.GradientFill{Gradient: iconset.BrandGradient},
//	    Glyph:      iconset.Shield{},
//	}
//	c, err := iconset.Compose(512, layers)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = png.Encode(w, c.Image())
//
// # Strategies
//
// A batch loads the master logo once with LoadMaster and picks its Strategy
// with SelectStrategy: if the master loaded, every icon is a Lanczos
// resample of it; otherwise every icon is composed from Layers. The platform tables live in the platform package
// and the batch writer in the emitter package.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
package iconset
