// Copyright (c) 2026 Kinodex. All rights reserved.

package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/kinodex/kinodex/internal/platform/apperr"
	"github.com/kinodex/kinodex/internal/platform/dberr"
	"github.com/kinodex/kinodex/internal/platform/validate"
	"github.com/kinodex/kinodex/pkg/idlist"
	"github.com/kinodex/kinodex/pkg/pagination"
)

// Service implements the catalog query engine use cases.
//
// It is stateless across requests; the repositories are its only
// dependencies and are injected explicitly, never pulled from ambient
// request state.
type Service struct {
	titles TitleRepository
	names  NameRepository
	logger *slog.Logger
}

// NewService constructs a catalog [Service].
func NewService(titles TitleRepository, names NameRepository, logger *slog.Logger) *Service {
	return &Service{
		titles: titles,
		names:  names,
		logger: logger,
	}
}

// ListTitles returns the full unfiltered catalog listing.
func (service *Service) ListTitles(ctx context.Context) ([]*Movie, error) {
	return service.titles.ListTitles(ctx)
}

// Search runs the filtered, paginated title search.
//
// The year filter, when present, must be a strict 4-digit year; validation
// fails fast, before any storage call. Pagination parameters are assumed
// already coerced by [pagination.FromRequest].
func (service *Service) Search(ctx context.Context, filter Filter, params pagination.Params) ([]SearchRow, int, error) {
	validator := &validate.Validator{}
	validator.Year("year", filter.Year)
	if err := validator.Err(); err != nil {
		return nil, 0, err
	}

	return service.titles.SearchTitles(ctx, filter, params.PerPage, params.Offset())
}

// Detail assembles the denormalized movie view for one title id.
//
// # Fan-out
//
// The title row, rating, crew, and billed cast are independent reads keyed by
// the same id, so they are issued concurrently. The errgroup is the merge
// barrier: assembly starts only after every read has completed, and the first
// failure cancels the rest and fails the whole operation. A missing side row
// is not a failure — it only leaves the corresponding fields empty.
func (service *Service) Detail(ctx context.Context, id string) (*MovieDetail, error) {
	var (
		movie     *Movie
		rating    *Rating
		directors []string
		writers   []string
		actors    []string
	)

	group, groupCtx := errgroup.WithContext(ctx)

	// Title row — the aggregate anchor. Absence here is the only not-found.
	group.Go(func() error {
		found, err := service.titles.GetTitle(groupCtx, id)
		if err != nil {
			if errors.Is(err, dberr.ErrNotFound) {
				return apperr.NotFound(fmt.Sprintf("Movie not found: %s.", id))
			}
			return err
		}
		movie = found
		return nil
	})

	// Optional rating side row.
	group.Go(func() error {
		found, err := service.titles.GetRating(groupCtx, id)
		if err != nil {
			return err
		}
		rating = found
		return nil
	})

	// Optional crew side row, decoded and resolved to display names.
	group.Go(func() error {
		crew, err := service.titles.GetCrew(groupCtx, id)
		if err != nil || crew == nil {
			return err
		}

		directors, err = service.resolveOrdered(groupCtx, idlist.Decode(crew.Directors))
		if err != nil {
			return err
		}

		writers, err = service.resolveOrdered(groupCtx, idlist.Decode(crew.Writers))
		return err
	})

	// Top-billed cast.
	group.Go(func() error {
		actorIDs, err := service.titles.ListActorIDs(groupCtx, id, topBilledCast)
		if err != nil {
			return err
		}

		actors, err = service.resolveOrdered(groupCtx, actorIDs)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	detail := &MovieDetail{
		Title:    movie.PrimaryTitle,
		Year:     movie.StartYear,
		Runtime:  formatRuntime(movie.RuntimeMinutes),
		Genre:    movie.Genres,
		Director: strings.Join(directors, ", "),
		Writer:   strings.Join(writers, ", "),
		Actors:   strings.Join(actors, ", "),
		Ratings:  []RatingEntry{},
	}

	if rating != nil {
		detail.Ratings = append(detail.Ratings, RatingEntry{
			Source: ratingSource,
			Value:  formatRatingValue(rating.AverageRating),
		})
	}

	return detail, nil
}

// resolveOrdered projects a person-id sequence to display names, preserving
// the caller's order. Ids with no name row are dropped silently: missing
// person records degrade the credit string rather than fail the response.
func (service *Service) resolveOrdered(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	lookup, err := service.names.ResolveNames(ctx, ids)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := lookup[id]; ok {
			names = append(names, name)
		}
	}

	return names, nil
}

// formatRuntime renders runtime minutes as "<n> min", or "" when unknown.
func formatRuntime(minutes *int) string {
	if minutes == nil {
		return ""
	}
	return fmt.Sprintf("%d min", *minutes)
}

// formatRatingValue renders an average rating as "<avg>/10".
func formatRatingValue(average float64) string {
	return strconv.FormatFloat(average, 'f', -1, 64) + "/10"
}
