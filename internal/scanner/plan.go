package scanner

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/mux-flow/internal/media"
)

// Plan pairs the Nth video with the Nth subtitle and derives every name the
// run will touch. Nothing on disk is changed.
func Plan(inv Inventory) (media.Plan, error) {
	if err := inv.CheckCounts(); err != nil {
		return media.Plan{}, err
	}

	plan := media.Plan{Dir: inv.Dir, Pairs: make([]media.Pair, 0, len(inv.Videos))}
	for i := range inv.Videos {
		video := &media.VideoAsset{
			Original: inv.Videos[i],
			Temp:     tempName(i, inv.Videos[i]),
		}
		sub := &media.SubtitleAsset{
			Original:  inv.Subtitles[i],
			Temp:      tempName(i, inv.Subtitles[i]),
			Converted: replaceExt(inv.Subtitles[i], media.ConvertedExt),
		}
		plan.Pairs = append(plan.Pairs, media.Pair{
			Ordinal:  i,
			Video:    video,
			Subtitle: sub,
			Output:   video.Original,
		})
	}

	if err := checkCollisions(inv, plan); err != nil {
		return media.Plan{}, err
	}
	return plan, nil
}

func tempName(ordinal int, original string) string {
	return strconv.Itoa(ordinal) + strings.ToLower(filepath.Ext(original))
}

func replaceExt(name, ext string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ext
}

// checkCollisions rejects plans where a rename or tool output would land on
// a path that is already taken.
func checkCollisions(inv Inventory, plan media.Plan) error {
	participants := make(map[string]bool, len(inv.Videos)+len(inv.Subtitles))
	for _, n := range inv.Videos {
		participants[n] = true
	}
	for _, n := range inv.Subtitles {
		participants[n] = true
	}
	others := make(map[string]bool, len(inv.Other))
	for _, n := range inv.Other {
		others[n] = true
	}

	claimed := make(map[string]string)
	claim := func(name, owner string) error {
		if prev, ok := claimed[name]; ok {
			return fmt.Errorf("%w: %s is needed by both %s and %s", ErrNameCollision, name, prev, owner)
		}
		if others[name] {
			return fmt.Errorf("%w: %s (for %s) already exists", ErrNameCollision, name, owner)
		}
		claimed[name] = owner
		return nil
	}
	renameTarget := func(temp, original string) error {
		if temp != original && participants[temp] {
			return fmt.Errorf("%w: renaming %s to %s would overwrite an unprocessed file", ErrNameCollision, original, temp)
		}
		return claim(temp, original)
	}

	for _, p := range plan.Pairs {
		if err := renameTarget(p.Video.Temp, p.Video.Original); err != nil {
			return err
		}
		if err := renameTarget(p.Subtitle.Temp, p.Subtitle.Original); err != nil {
			return err
		}
	}
	for _, p := range plan.Pairs {
		if err := claim(p.Subtitle.Converted, p.Subtitle.Original); err != nil {
			return err
		}
	}
	for _, p := range plan.Pairs {
		if err := claim(p.Output, "output of "+p.Video.Original); err != nil {
			return err
		}
	}

	return nil
}
