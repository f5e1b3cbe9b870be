// Package seed generates deterministic demo datasets: a realistic mix of
// drawings, spools, supports, valves, field welds and welders with partial
// milestone progress. The same seed always yields the same dataset, so demo
// environments and tests are reproducible.
package seed

import (
	"fmt"
	"math/rand"

	"github.com/pipetrak/pipetrak/constants"
	"github.com/pipetrak/pipetrak/internal/entity"
	"github.com/pipetrak/pipetrak/internal/importer"
)

// Config controls the shape of a generated dataset.
type Config struct {
	Seed             int64
	Drawings         int
	SpoolsPerDrawing int
	ValvesPerDrawing int
	WeldsPerDrawing  int
	Welders          int
	Areas            []string
	Systems          []string
	TestPackages     []string
	// WithProgress seeds partial milestone completion; off produces a
	// dataset that looks like a fresh takeoff import.
	WithProgress bool
}

// DefaultConfig is sized like a small construction work package.
func DefaultConfig() Config {
	return Config{
		Seed:             1,
		Drawings:         12,
		SpoolsPerDrawing: 3,
		ValvesPerDrawing: 2,
		WeldsPerDrawing:  5,
		Welders:          6,
		Areas:            []string{"B-68", "B-72", "OSBL"},
		Systems:          []string{"CS-101", "CW-200", "HP-STEAM"},
		TestPackages:     []string{"TP-001", "TP-002", "TP-003", "TP-004"},
		WithProgress:     true,
	}
}

// Dataset is a generated demo batch. Rows carry resolved identity keys and
// (optionally) pre-seeded milestone progress and can be handed straight to
// the bulk writer; Welders is the stencil roster that goes with them.
type Dataset struct {
	Rows    []importer.ComponentRow
	Welders []string
}

var commodityCodes = []string{"PIPE-CS-A106", "ELBOW-90-LR", "TEE-RED", "GASKET-SPW", "VALVE-GATE-150", "SUPPORT-CS-HD"}
var sizes = []string{"2\"", "3\"", "4\"", "6\"", "8\""}
var weldTypes = []string{"BW", "SW"}

// Generate builds a dataset from cfg. All randomness flows from one
// rand.Rand seeded with cfg.Seed.
func Generate(cfg Config) *Dataset {
	rng := rand.New(rand.NewSource(cfg.Seed))
	ds := &Dataset{}

	for w := 0; w < cfg.Welders; w++ {
		ds.Welders = append(ds.Welders, fmt.Sprintf("W-%02d", w+1))
	}

	rowNo := 2 // 1-based data rows below a header row
	weldIdx := 0
	for d := 0; d < cfg.Drawings; d++ {
		drawing := fmt.Sprintf("P-%04d-%02d", 1000+d, rng.Intn(3)+1)
		norm := importer.NormalizeDrawing(drawing)
		area := pick(rng, cfg.Areas)
		system := pick(rng, cfg.Systems)
		testPkg := pick(rng, cfg.TestPackages)

		supportSeq := 0
		for sp := 0; sp < cfg.SpoolsPerDrawing; sp++ {
			spoolID := fmt.Sprintf("%s-SP%02d", norm, sp+1)
			spool := importer.ComponentRow{
				RowNumber:     rowNo,
				Type:          constants.Spool,
				Key:           importer.SpoolKey{Type: constants.Spool, SpoolID: spoolID},
				DrawingNumber: drawing,
				DrawingNorm:   norm,
				CommodityCode: commodityCodes[0],
				Spec:          "CS150",
				Description:   "Fabricated pipe spool",
				Size:          pick(rng, sizes),
				Quantity:      1,
				Seq:           1,
				Area:          area,
				System:        system,
				TestPackage:   testPkg,
			}
			if cfg.WithProgress {
				spool.Milestones = progress(rng, importer.InitialState(constants.Spool))
			}
			ds.Rows = append(ds.Rows, spool)
			rowNo++

			// each spool hangs on two supports at the same size and
			// commodity code; seq runs across the whole drawing so
			// same-size supports of different spools never collide
			for i := 0; i < 2; i++ {
				supportSeq++
				sup := importer.ComponentRow{
					RowNumber: rowNo,
					Type:      constants.Support,
					Key: importer.StandardKey{
						Type:          constants.Support,
						DrawingNorm:   norm,
						CommodityCode: commodityCodes[5],
						Size:          spool.Size,
						Seq:           supportSeq,
					},
					DrawingNumber: drawing,
					DrawingNorm:   norm,
					CommodityCode: commodityCodes[5],
					Spec:          "CS150",
					Description:   "Heavy duty support",
					Size:          spool.Size,
					Quantity:      1,
					Seq:           supportSeq,
					Area:          area,
					System:        system,
					TestPackage:   testPkg,
				}
				if cfg.WithProgress {
					sup.Milestones = progress(rng, importer.InitialState(constants.Support))
				}
				ds.Rows = append(ds.Rows, sup)
				rowNo++
			}
		}

		for v := 0; v < cfg.ValvesPerDrawing; v++ {
			size := pick(rng, sizes)
			valve := importer.ComponentRow{
				RowNumber: rowNo,
				Type:      constants.Valve,
				Key: importer.StandardKey{
					Type:          constants.Valve,
					DrawingNorm:   norm,
					CommodityCode: commodityCodes[4],
					Size:          size,
					Seq:           v + 1,
				},
				DrawingNumber: drawing,
				DrawingNorm:   norm,
				CommodityCode: commodityCodes[4],
				Spec:          "CS150",
				Description:   "Gate valve",
				Size:          size,
				Quantity:      1,
				Seq:           v + 1,
				Area:          area,
				System:        system,
				TestPackage:   testPkg,
			}
			if cfg.WithProgress {
				valve.Milestones = progress(rng, importer.InitialState(constants.Valve))
			}
			ds.Rows = append(ds.Rows, valve)
			rowNo++
		}

		for fw := 0; fw < cfg.WeldsPerDrawing; fw++ {
			weldNo := fmt.Sprintf("FW-%03d", fw+1)
			welder := ""
			if len(ds.Welders) > 0 {
				// stencils rotate over the roster so every welder shows
				// up in the sheet and lands on the imported roster
				welder = ds.Welders[weldIdx%len(ds.Welders)]
			}
			weldIdx++
			weld := importer.ComponentRow{
				RowNumber:     rowNo,
				Type:          constants.FieldWeld,
				Key:           importer.WeldKey{DrawingNorm: norm, WeldNumber: weldNo},
				DrawingNumber: drawing,
				DrawingNorm:   norm,
				CommodityCode: commodityCodes[0],
				Description:   "Butt weld",
				Size:          pick(rng, sizes),
				Quantity:      1,
				Seq:           1,
				Area:          area,
				System:        system,
				TestPackage:   testPkg,
				WeldNumber:    weldNo,
				WeldType:      pick(rng, weldTypes),
				Welder:        welder,
			}
			if cfg.WithProgress {
				weld.Milestones = progress(rng, importer.WeldInitialState())
			}
			ds.Rows = append(ds.Rows, weld)
			rowNo++
		}
	}
	return ds
}

// progress marks a random prefix of the sequence complete, and roughly half
// the time leaves the next partial milestone mid-flight.
func progress(rng *rand.Rand, state entity.MilestoneState) entity.MilestoneState {
	n := rng.Intn(len(state) + 1)
	out := importer.CompletePrefix(state, n)
	if n < len(out) && out[n].Kind == constants.MilestonePartial && rng.Intn(2) == 0 {
		pct := (rng.Intn(9) + 1) * 10 // 10..90, never completes the milestone
		if next, err := importer.SetPercent(out, out[n].Name, pct); err == nil {
			out = next
		}
	}
	return out
}

func pick(rng *rand.Rand, values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[rng.Intn(len(values))]
}
