package http

import (
	"net/url"
	"sort"

	"github.com/gofiber/fiber/v2"

	"github.com/usvmap/usvmap/internal/core/domain"
)

// ListVesselsHandler returns the placed vessels, optionally filtered by
// ?country= (aliases accepted), with offset/limit pagination.
func ListVesselsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ds, err := deps.Datasets.Current(c.UserContext())
		if err != nil {
			return errFromView(c, err)
		}

		country := domain.ShowAll
		filters := url.Values{}
		if q := c.Query("country"); !domain.IsShowAll(q) {
			name := domain.NormalizeCountry(q)
			canonical, ok := ds.CanonicalCountry(name)
			if !ok {
				return errNotFound(c, "no vessels for country "+name)
			}
			country = canonical
			filters.Set("country", country)
		}
		vessels := ds.ByCountry(country)

		offset := c.QueryInt("offset", 0)
		limit := c.QueryInt("limit", 500)
		if offset < 0 {
			offset = 0
		}
		if limit <= 0 || limit > 1000 {
			limit = 500
		}

		total := len(vessels)
		if offset >= total {
			vessels = []domain.PlacedVessel{}
		} else {
			end := offset + limit
			if end > total {
				end = total
			}
			vessels = vessels[offset:end]
		}

		pg := Pagination{Offset: offset, Limit: limit, Total: total}
		SetLinkHeaders(c, pg, filters)
		return c.JSON(PaginatedResponse{Data: vessels, Pagination: pg})
	}
}

// ListCountriesHandler returns the selector entries: the "Show All" sentinel
// followed by the sorted countries of the current dataset.
func ListCountriesHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ds, err := deps.Datasets.Current(c.UserContext())
		if err != nil {
			return errFromView(c, err)
		}
		return c.JSON(fiber.Map{"countries": ds.CountryOptions()})
	}
}

// ListAnchorsHandler returns the resolved anchor of every country, sorted by name.
func ListAnchorsHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ds, err := deps.Datasets.Current(c.UserContext())
		if err != nil {
			return errFromView(c, err)
		}
		return c.JSON(fiber.Map{"anchors": sortedAnchors(ds)})
	}
}

// DatasetHandler returns the summary of the current dataset version.
func DatasetHandler(deps *Dependencies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ds, err := deps.Datasets.Current(c.UserContext())
		if err != nil {
			return errFromView(c, err)
		}
		return c.JSON(ds.Summary())
	}
}

// GetViewHandler runs a render pass for the session without any interaction.
func GetViewHandler(deps *Dependencies) fiber.Handler {
	return viewEventHandler(deps, func(*fiber.Ctx) (domain.ViewEvent, string) {
		return domain.ViewEvent{Kind: domain.EventRender}, ""
	})
}

// SelectCountryHandler applies the country selector. The body is
// {"country": "..."}; the "Show All" sentinel clears the filter.
func SelectCountryHandler(deps *Dependencies) fiber.Handler {
	type selectRequest struct {
		Country *string `json:"country"`
	}
	return viewEventHandler(deps, func(c *fiber.Ctx) (domain.ViewEvent, string) {
		var req selectRequest
		if err := c.BodyParser(&req); err != nil || req.Country == nil {
			return domain.ViewEvent{}, `body must be {"country": "<name>"}`
		}
		return domain.ViewEvent{Kind: domain.EventSelectCountry, Country: *req.Country}, ""
	})
}

// ZoomAllHandler zooms out to every vessel for one render pass, keeping the filter.
func ZoomAllHandler(deps *Dependencies) fiber.Handler {
	return viewEventHandler(deps, func(*fiber.Ctx) (domain.ViewEvent, string) {
		return domain.ViewEvent{Kind: domain.EventZoomToAll}, ""
	})
}

// ClearFilterHandler resets the filter and zooms out in one transition.
func ClearFilterHandler(deps *Dependencies) fiber.Handler {
	return viewEventHandler(deps, func(*fiber.Ctx) (domain.ViewEvent, string) {
		return domain.ViewEvent{Kind: domain.EventClearFilter}, ""
	})
}

// viewEventHandler builds the event with parse, which returns a non-empty
// message for a malformed request, and responds with the resulting view.
func viewEventHandler(deps *Dependencies, parse func(*fiber.Ctx) (domain.ViewEvent, string)) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ev, problem := parse(c)
		if problem != "" {
			return errBadRequest(c, problem)
		}

		view, err := deps.Views.Apply(c.UserContext(), sessionID(c), ev)
		if err != nil {
			return errFromView(c, err)
		}

		c.Set("Cache-Control", "private, no-store")
		return c.JSON(view)
	}
}

func sortedAnchors(ds *domain.Dataset) []domain.GeoAnchor {
	anchors := make([]domain.GeoAnchor, 0, len(ds.Anchors))
	for _, a := range ds.Anchors {
		anchors = append(anchors, a)
	}
	sort.Slice(anchors, func(i, j int) bool { return anchors[i].Country < anchors[j].Country })
	return anchors
}
