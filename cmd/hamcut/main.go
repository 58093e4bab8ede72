package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/hamcut"
	"github.com/osuushi/hamcut/advanced"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	rounds     = kingpin.Flag("rounds", "Number of rounds of cuts").Short('k').Default("2").Int()
	configPath = kingpin.Flag("config", "YAML file of decomposition options").Short('c').ExistingFile()
	pngPath    = kingpin.Flag("png", "Render the decomposition to this PNG file").String()
	preview    = kingpin.Flag("preview", "Show the rendering in the terminal (iTerm only)").Bool()
	scale      = kingpin.Flag("scale", "Pixels per unit when rendering").Default("20").Float64()
	workers    = kingpin.Flag("workers", "Regions to cut at once").Default("1").Int()
	verbose    = kingpin.Flag("verbose", "Log every cut and dump the whole decomposition").Short('v').Bool()
)

// Demo of ham-sandwich decomposition. Input on stdin should be newline
// separated points in the form "x y color". Colors are arbitrary names, and
// there must be exactly two of them, each with an odd number of points. Blank
// lines and lines starting with # are ignored.
func main() {
	kingpin.Parse()

	opts := advanced.DefaultOptions()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		kingpin.FatalIfError(err, "reading config")
		opts, err = advanced.ParseOptions(data)
		kingpin.FatalIfError(err, "parsing config")
	}
	if *workers > 1 {
		opts.Workers = *workers
	}
	if *verbose {
		hamcut.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	names, colors, err := readPoints(os.Stdin)
	kingpin.FatalIfError(err, "reading points")
	fmt.Printf("Read %d colors: %s\n", len(names), strings.Join(names, ", "))

	set := advanced.NewColorPointSet(opts.DomainMargin, colors...)
	d, err := hamcut.Decompose(set, *rounds, hamcut.WithOptions(opts))
	kingpin.FatalIfError(err, "decomposing")

	printDecomposition(d, names)
	if *verbose {
		pretty.Println(d)
	}

	if *pngPath != "" || *preview {
		path := *pngPath
		if path == "" {
			path = filepath.Join(os.TempDir(), "hamcut.png")
		}
		err := d.Draw(*scale).SavePNG(path)
		kingpin.FatalIfError(err, "saving %s", path)
		if *preview {
			imgcat.CatFile(path, os.Stdout)
		}
	}
	if d.ErrorOccurred {
		os.Exit(1)
	}
}

func readPoints(in io.Reader) (names []string, colors [][]advanced.Point, err error) {
	colorIndex := map[string]int{}
	scanner := bufio.NewScanner(in)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		point, name, err := parsePoint(line)
		if err != nil {
			return nil, nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		color, ok := colorIndex[name]
		if !ok {
			color = len(names)
			colorIndex[name] = color
			names = append(names, name)
			colors = append(colors, nil)
		}
		colors[color] = append(colors[color], point)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	return names, colors, nil
}

func parsePoint(line string) (advanced.Point, string, error) {
	parts := strings.Fields(line)
	if len(parts) != 3 {
		return advanced.Point{}, "", errors.Errorf("expected \"x y color\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return advanced.Point{}, "", errors.Wrap(err, "x")
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return advanced.Point{}, "", errors.Wrap(err, "y")
	}
	return advanced.Point{X: x, Y: y}, parts[2], nil
}

func printDecomposition(d *hamcut.Decomposition, names []string) {
	for _, record := range d.Records {
		fmt.Printf("%s level %d region %d: y = %.6gx + %.6g\n",
			aurora.Cyan("cut"), record.Level, record.Region, record.Line.Slope, record.Line.Intercept)
	}
	for _, region := range d.Regions {
		counts := region.Points.ColorCounts()
		parts := make([]string, len(counts))
		for color, count := range counts {
			parts[color] = fmt.Sprintf("%d %s", count, names[color])
		}
		fmt.Printf("%s %d: %s\n", aurora.Green("region"), region.Index, strings.Join(parts, ", "))
	}
	fmt.Printf("%d points on cuts\n", len(d.OnCut))
	for _, failure := range d.Failures {
		fmt.Printf("%s %s\n", aurora.Red("failed"), failure)
	}
}
