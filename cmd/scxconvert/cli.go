package main

import (
	"fmt"

	"github.com/scxtools/scx/internal/catalog"
	"github.com/scxtools/scx/internal/config"
	"github.com/scxtools/scx/internal/scan"
	"github.com/scxtools/scx/pkg/scen"
	"github.com/scxtools/scx/pkg/scx"
)

// indexWorkers bounds concurrent file parsing during catalog indexing.
const indexWorkers = 4

func runInfo(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("info expects exactly one file")
	}
	s, err := scx.LoadFile(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("edition:     %v\n", s.Edition)
	fmt.Printf("description: %s\n", s.Header.Description)
	fmt.Printf("map:         %dx%d\n", s.Map.Width, s.Map.Height)
	fmt.Printf("players:     %d declared, %d active\n", s.Header.PlayerCount, s.ActivePlayers())
	fmt.Printf("triggers:    %d\n", len(s.Triggers))
	fmt.Printf("ai files:    %d\n", len(s.AI.Files))
	return nil
}

func runConvert(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("convert expects <target-edition> <in-file> <out-file>")
	}
	target, err := scen.ParseName(args[0])
	if err != nil {
		return err
	}
	s, err := scx.LoadFile(args[1])
	if err != nil {
		return err
	}
	s.Header.Touch()

	data, notes, err := scx.SaveLevel(s, target, config.GetInt("compressionLevel"))
	if err != nil {
		return err
	}
	for _, note := range notes {
		Logger.Warn().
			Str("section", note.Section).
			Str("detail", note.Detail).
			Msg("lossy conversion")
	}
	if err := writeFileAtomic(args[2], data); err != nil {
		return err
	}
	Logger.Info().
		Str("from", s.Edition.String()).
		Str("to", target.String()).
		Int("bytes", len(data)).
		Msg("converted scenario")
	return nil
}

func runIndex(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("index expects at least one file")
	}
	cat, err := catalog.Open(config.GetString("catalog.path"))
	if err != nil {
		return err
	}
	defer cat.Close()

	for _, r := range scan.Load(args, indexWorkers) {
		if r.Err != nil {
			Logger.Warn().Err(r.Err).Str("path", r.Path).Msg("skipping unreadable scenario")
			continue
		}
		if err := cat.Put(r.Path, r.Scenario); err != nil {
			return err
		}
		Logger.Info().Str("path", r.Path).Str("edition", r.Scenario.Edition.String()).Msg("indexed")
	}
	return nil
}

func runList(args []string) error {
	if len(args) != 0 {
		return fmt.Errorf("list takes no arguments")
	}
	cat, err := catalog.Open(config.GetString("catalog.path"))
	if err != nil {
		return err
	}
	defer cat.Close()

	entries, err := cat.List()
	if err != nil {
		return err
	}
	for _, e := range entries {
		fmt.Printf("%-16s %4dx%-4d %2d players %4d triggers  %s\n",
			e.Edition, e.MapWidth, e.MapHeight, e.PlayerCount, e.TriggerCount, e.Path)
	}
	return nil
}
