package catalog

import (
	"path/filepath"
	"sort"
	"strings"
)

// Classify groups a folder listing into logical photo records. It is a
// pure function of the given names: no filesystem access, no sizes, no
// absolute paths. Filenames with unrecognized extensions are ignored.
//
// Pairing rules:
//   - a JPEG and a RAW sharing a pairing key form one jpg+raw record;
//   - an unpaired JPEG is jpg_only, an unpaired RAW is raw_only;
//   - when several RAW files share one key (dual-format capture) the
//     first by extension order pairs and the rest surface as raw_only,
//     so no file is hidden from the listing;
//   - videos never pair.
//
// The result is ordered by record name, case-insensitive, so UI paging
// is deterministic.
func Classify(names []string, videoExtensions []string) []PhotoRecord {
	videoExts := make(map[string]bool, len(videoExtensions))
	for _, ext := range videoExtensions {
		videoExts[strings.ToLower(ext)] = true
	}

	sorted := append([]string(nil), names...)
	sort.Slice(sorted, func(i, j int) bool {
		return lessFold(sorted[i], sorted[j])
	})

	jpegs := make(map[string]string)
	raws := make(map[string][]string)
	var videos []string

	for _, name := range sorted {
		switch {
		case IsJPEG(name):
			key := pairingKey(name)
			if _, dup := jpegs[key]; !dup {
				jpegs[key] = name
			}
		case IsRAW(name):
			key := pairingKey(name)
			raws[key] = append(raws[key], name)
		case videoExts[strings.ToLower(filepath.Ext(name))]:
			videos = append(videos, name)
		}
	}

	var records []PhotoRecord

	for key, jpg := range jpegs {
		rec := PhotoRecord{
			Name:      baseName(jpg),
			Type:      TypeJPGOnly,
			MediaType: MediaImage,
			JPGPath:   jpg,
		}
		if siblings := raws[key]; len(siblings) > 0 {
			paired := firstByExtension(siblings)
			rec.Type = TypeJPGRaw
			rec.RAWPath = paired
			rec.CameraBrand = CameraBrand(paired)
			raws[key] = removeName(siblings, paired)
		}
		records = append(records, rec)
	}

	for _, siblings := range raws {
		for _, raw := range siblings {
			records = append(records, PhotoRecord{
				Name:        baseName(raw),
				Type:        TypeRAWOnly,
				MediaType:   MediaImage,
				RAWPath:     raw,
				CameraBrand: CameraBrand(raw),
			})
		}
	}

	for _, video := range videos {
		records = append(records, PhotoRecord{
			Name:      baseName(video),
			Type:      TypeVideo,
			MediaType: MediaVideo,
			VideoPath: video,
		})
	}

	for i := range records {
		rec := &records[i]
		switch {
		case rec.JPGPath != "":
			rec.DisplayPath = rec.JPGPath
		case rec.RAWPath != "":
			rec.DisplayPath = rec.RAWPath
		default:
			rec.DisplayPath = rec.VideoPath
		}
	}

	sort.Slice(records, func(i, j int) bool {
		if !strings.EqualFold(records[i].Name, records[j].Name) {
			return lessFold(records[i].Name, records[j].Name)
		}
		return lessFold(records[i].DisplayPath, records[j].DisplayPath)
	})

	return records
}

// firstByExtension picks the RAW that pairs when several share a key:
// lexicographically smallest extension, case-insensitive.
func firstByExtension(names []string) string {
	best := names[0]
	for _, name := range names[1:] {
		if lessFold(filepath.Ext(name), filepath.Ext(best)) {
			best = name
		}
	}
	return best
}

func removeName(names []string, drop string) []string {
	out := names[:0]
	for _, name := range names {
		if name != drop {
			out = append(out, name)
		}
	}
	return out
}

// lessFold is a locale-independent case-insensitive ordering.
func lessFold(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}
