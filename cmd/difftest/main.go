package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"lifeboard/internal/app"
	_ "lifeboard/pkg/boards/naive"
	_ "lifeboard/pkg/boards/packed"
	_ "lifeboard/pkg/boards/parallel"
	"lifeboard/pkg/difftest"
)

func main() {
	cfg := app.NewDiffConfig()
	cfg.Bind(flag.CommandLine)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] [w=N h=N rounds=N seed=N density=F gods=a,b]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	base, err := difftest.Preset(cfg.Preset)
	if err != nil {
		log.Fatal(err)
	}
	overrides, err := app.ParseOverrides(flag.Args())
	if err != nil {
		log.Fatal(err)
	}
	s := difftest.FromMap(base, overrides)

	fmt.Printf("*** %s vs %s: %dx%d board, %d rounds, gods %v\n", cfg.Baseline, cfg.Candidate, s.Width, s.Height, s.Rounds, s.Gods)
	tester, err := difftest.RunScenario(s, cfg.Baseline, cfg.Candidate)
	if tester != nil {
		fmt.Println(tester.Memory())
		fmt.Println(tester.Report())
	}
	var mm *difftest.MismatchError
	if errors.As(err, &mm) {
		fmt.Printf("=== FAIL: %v\n", mm)
		os.Exit(1)
	}
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("=== PASS")
}
