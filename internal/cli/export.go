package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/aretw0/sbmlexport"
	"github.com/aretw0/sbmlexport/pkg/domain"
)

// Mode selects what an export run covers.
type Mode int

const (
	ModeAll Mode = iota
	ModeTopLevel
	ModeSpecies
	ModeMultiple
	ModeEvents
)

func (m Mode) String() string {
	switch m {
	case ModeTopLevel:
		return "toplevelpath"
	case ModeSpecies:
		return "species"
	case ModeMultiple:
		return "multiple"
	case ModeEvents:
		return "listevents"
	default:
		return "all"
	}
}

// ErrConflictingModes is returned when more than one export mode is given.
var ErrConflictingModes = errors.New("only one of --toplevelpath, --species, --multiple and --listevents may be given")

// ExportRequest carries the launcher flags. Zero ids and empty lists are unset.
type ExportRequest struct {
	TopLevel domain.DBID
	Species  domain.DBID
	Multiple string
	Events   string
	Format   string
}

// Mode resolves the requested mode. No mode flag means every species.
func (r ExportRequest) Mode() (Mode, error) {
	var modes []Mode
	if r.TopLevel != 0 {
		modes = append(modes, ModeTopLevel)
	}
	if r.Species != 0 {
		modes = append(modes, ModeSpecies)
	}
	if strings.TrimSpace(r.Multiple) != "" {
		modes = append(modes, ModeMultiple)
	}
	if strings.TrimSpace(r.Events) != "" {
		modes = append(modes, ModeEvents)
	}
	switch len(modes) {
	case 0:
		return ModeAll, nil
	case 1:
		return modes[0], nil
	default:
		return ModeAll, ErrConflictingModes
	}
}

// ParseIDs splits a comma separated id list. Blank entries are ignored.
func ParseIDs(s string) ([]domain.DBID, error) {
	var ids []domain.DBID
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", part, err)
		}
		ids = append(ids, domain.DBID(n))
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no ids in %q", s)
	}
	return ids, nil
}

// RunExport performs the export the request selects. Ids that are not
// pathways are logged and reported as skipped; an event list fails as a
// whole.
func RunExport(ctx context.Context, exp *sbmlexport.Exporter, req ExportRequest, logger *slog.Logger) (sbmlexport.Report, error) {
	mode, err := req.Mode()
	if err != nil {
		return sbmlexport.Report{}, err
	}
	logger.Info("starting export", "mode", mode.String(), "format", req.Format)

	switch mode {
	case ModeTopLevel:
		name, err := exp.ExportPathway(ctx, req.Format, req.TopLevel)
		switch {
		case err == nil:
			return sbmlexport.Report{Written: []string{name}}, nil
		case sbmlexport.Skippable(err):
			logger.Error("skipping id", "dbId", req.TopLevel, "err", err)
			return sbmlexport.Report{Skipped: []domain.DBID{req.TopLevel}}, nil
		default:
			return sbmlexport.Report{}, err
		}
	case ModeSpecies:
		return exp.ExportSpecies(ctx, req.Format, req.Species)
	case ModeMultiple:
		ids, err := ParseIDs(req.Multiple)
		if err != nil {
			return sbmlexport.Report{}, err
		}
		return exp.ExportPathways(ctx, req.Format, ids)
	case ModeEvents:
		ids, err := ParseIDs(req.Events)
		if err != nil {
			return sbmlexport.Report{}, err
		}
		name, err := exp.ExportEvents(ctx, req.Format, ids)
		if err != nil {
			return sbmlexport.Report{}, err
		}
		return sbmlexport.Report{Written: []string{name}}, nil
	default:
		return exp.ExportAll(ctx, req.Format)
	}
}
