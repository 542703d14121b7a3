package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/sasha-s/go-deadlock"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

func main() {
	flag.Parse()
	runtime.GOMAXPROCS(runtime.NumCPU())

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	deadlock.Opts.Disable = !*debugFlag
	deadlock.Opts.DeadlockTimeout = deadlockTimeout

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	tr := noopTracer()
	if telemetryConfigured() {
		shutdown, err := setupTelemetry(ctx)
		if err != nil {
			log.Printf("Telemetry setup failed, continuing without it: %v", err)
		} else {
			tr = tracer("renderer")
			defer func() {
				if err := shutdown(context.Background()); err != nil {
					log.Printf("Telemetry shutdown: %v", err)
				}
			}()
		}
	}

	grid, err := buildMap(ctx, tr)
	if err != nil {
		log.Fatalf("Map: %v", err)
	}
	if *writeMapFlag != "" {
		if err := saveMap(*writeMapFlag, grid); err != nil {
			log.Fatalf("Map: %v", err)
		}
		log.Printf("Wrote %dx%d map to %s", grid.width, grid.height, *writeMapFlag)
		return
	}

	textures := generateTextures(textureRes)
	if *texturesFlag != "" {
		if textures, err = loadTextureDir(*texturesFlag); err != nil {
			log.Fatalf("Textures: %v", err)
		}
	}

	mode, err := parseFloorMode(*floorModeFlag)
	if err != nil {
		log.Fatalf("Flags: %v", err)
	}
	fov := *fovDegreesFlag
	if fov < 1 {
		fov = 1
	} else if fov > 170 {
		fov = 170
	}
	workers := *floorWorkersFlag
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	w := newWorld(grid, textures)
	r := newRenderer(w, defaultViewW, defaultViewH, fov*math.Pi/180, mode, workers, tr)
	log.Printf("Map %dx%d, start (%.1f, %.1f), %d floor workers, %s floor casting",
		grid.width, grid.height, w.agent.posX, w.agent.posY, workers, mode)

	var stopProfile func()
	if *cpuProfileFlag != "" || *recordDefaultPGO {
		path := *cpuProfileFlag
		if *recordDefaultPGO {
			path = "default.pgo"
		}
		if stopProfile, err = startCPUProfile(path); err != nil {
			log.Printf("CPU profile disabled: %v", err)
		}
	}

	if *tuiFlag {
		if *footstepsFlag != "" {
			log.Printf("Footstep audio is only available in the window backend")
		}
		err := runTerminal(ctx, w, r)
		r.close()
		if stopProfile != nil {
			stopProfile()
		}
		if err != nil {
			log.Fatalf("Terminal: %v", err)
		}
		return
	}

	g := newGame(ctx, w, r)
	g.stopProfile = stopProfile
	if *recordDefaultPGO {
		g.autoWalk = newAutoWalker(pgoRecordDuration, time.Now().UnixNano())
	}
	if *footstepsFlag != "" {
		stream, _, err := startFootsteps(*footstepsFlag)
		if err != nil {
			log.Printf("Footstep audio disabled: %v", err)
		} else {
			g.footsteps = stream
		}
	}
	defer g.close()

	ebiten.SetWindowSize(defaultViewW*windowScale, defaultViewH*windowScale)
	ebiten.SetWindowTitle("Raycaster")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(int(defaultTPS))
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatalf("Game: %v", err)
	}
}

// buildMap loads the map file or generates one from the flags.
func buildMap(ctx context.Context, tr trace.Tracer) (*gridMap, error) {
	_, span := tr.Start(ctx, "map.load")
	defer span.End()

	if *mapFileFlag != "" {
		span.SetAttributes(attribute.String("map.path", *mapFileFlag))
		return loadMap(*mapFileFlag)
	}
	mw, mh, err := parseMapSize(*mapSizeFlag)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("map.generator", *mapGenFlag), attribute.Int("map.width", mw), attribute.Int("map.height", mh))
	switch *mapGenFlag {
	case "synthetic":
		return newSyntheticMap(mw, mh), nil
	case "procedural":
		seed := *seedFlag
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		log.Printf("Procedural map seed %d", seed)
		return newProceduralMap(mw, mh, rand.New(rand.NewSource(seed))), nil
	}
	return nil, fmt.Errorf("unknown map generator %q (want synthetic or procedural)", *mapGenFlag)
}

// parseMapSize parses "WxH"; both sides must be at least 3 so a border leaves
// an open cell, and no larger than a map file may be.
func parseMapSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("map size %q must look like WxH", s)
	}
	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, fmt.Errorf("map size %q: %w", s, err)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, fmt.Errorf("map size %q: %w", s, err)
	}
	if w < 3 || h < 3 || w > maxMapSide || h > maxMapSide {
		return 0, 0, fmt.Errorf("map size %q: both sides must be between 3 and %d", s, maxMapSide)
	}
	return w, h, nil
}
