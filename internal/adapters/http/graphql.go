package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/graphql-go/graphql"

	"github.com/usvmap/usvmap/internal/core/domain"
)

// buildSchema creates the GraphQL schema wired to the dataset service.
func buildSchema(deps *Dependencies) (graphql.Schema, error) {
	geoPointType := graphql.NewObject(graphql.ObjectConfig{
		Name: "GeoPoint",
		Fields: graphql.Fields{
			"lat": &graphql.Field{Type: graphql.Float},
			"lon": &graphql.Field{Type: graphql.Float},
		},
	})

	vesselType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Vessel",
		Fields: graphql.Fields{
			"row":          &graphql.Field{Type: graphql.Int},
			"name":         &graphql.Field{Type: graphql.String},
			"manufacturer": &graphql.Field{Type: graphql.String},
			"country":      &graphql.Field{Type: graphql.String},
			"raw_country":  &graphql.Field{Type: graphql.String},
			"length_m":     &graphql.Field{Type: graphql.Float},
			"anchor":       &graphql.Field{Type: geoPointType},
			"position":     &graphql.Field{Type: geoPointType},
		},
	})

	anchorType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Anchor",
		Fields: graphql.Fields{
			"country": &graphql.Field{Type: graphql.String},
			"point":   &graphql.Field{Type: geoPointType},
			"source":  &graphql.Field{Type: graphql.String},
		},
	})

	datasetType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Dataset",
		Fields: graphql.Fields{
			"path":      &graphql.Field{Type: graphql.String},
			"placed":    &graphql.Field{Type: graphql.Int},
			"dropped":   &graphql.Field{Type: graphql.Int},
			"countries": &graphql.Field{Type: graphql.Int},
			"encoding":  &graphql.Field{Type: graphql.String},
			"loaded_at": &graphql.Field{Type: graphql.String},
		},
	})

	queryType := graphql.NewObject(graphql.ObjectConfig{
		Name: "Query",
		Fields: graphql.Fields{
			"vessels": &graphql.Field{
				Type:        graphql.NewList(vesselType),
				Description: "Placed vessels, optionally filtered by country (aliases accepted)",
				Args: graphql.FieldConfigArgument{
					"country": &graphql.ArgumentConfig{Type: graphql.String, DefaultValue: domain.ShowAll},
				},
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					ds, err := deps.Datasets.Current(p.Context)
					if err != nil {
						return nil, err
					}
					country, _ := p.Args["country"].(string)
					if !domain.IsShowAll(country) {
						country = domain.NormalizeCountry(country)
					}
					vessels := ds.ByCountry(country)
					result := make([]map[string]interface{}, 0, len(vessels))
					for _, v := range vessels {
						result = append(result, vesselToMap(v))
					}
					return result, nil
				},
			},
			"countries": &graphql.Field{
				Type:        graphql.NewList(graphql.String),
				Description: "Country selector entries, \"Show All\" first",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					ds, err := deps.Datasets.Current(p.Context)
					if err != nil {
						return nil, err
					}
					return ds.CountryOptions(), nil
				},
			},
			"anchors": &graphql.Field{
				Type:        graphql.NewList(anchorType),
				Description: "Resolved anchor per country",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					ds, err := deps.Datasets.Current(p.Context)
					if err != nil {
						return nil, err
					}
					return sortedAnchors(ds), nil
				},
			},
			"dataset": &graphql.Field{
				Type:        datasetType,
				Description: "Summary of the current dataset version",
				Resolve: func(p graphql.ResolveParams) (interface{}, error) {
					ds, err := deps.Datasets.Current(p.Context)
					if err != nil {
						return nil, err
					}
					s := ds.Summary()
					return map[string]interface{}{
						"path":      s.Source.Path,
						"placed":    s.Placed,
						"dropped":   s.Dropped,
						"countries": s.Countries,
						"encoding":  s.Encoding,
						"loaded_at": s.LoadedAt.Format(time.RFC3339),
					}, nil
				},
			},
		},
	})

	return graphql.NewSchema(graphql.SchemaConfig{
		Query: queryType,
	})
}

// vesselToMap flattens a placed vessel; the default resolver does not see
// through the embedded record.
func vesselToMap(v domain.PlacedVessel) map[string]interface{} {
	m := map[string]interface{}{
		"row":          v.Row,
		"name":         v.Name,
		"manufacturer": v.Manufacturer,
		"country":      v.Country,
		"raw_country":  v.RawCountry,
		"anchor":       v.Anchor,
		"position":     v.Position,
	}
	if v.LengthM != nil {
		m["length_m"] = *v.LengthM
	}
	return m
}

// GraphQLHandler serves the GraphQL endpoint.
func GraphQLHandler(deps *Dependencies) fiber.Handler {
	schema, err := buildSchema(deps)
	if err != nil {
		// This would be a programming error in the schema definition
		panic("graphql schema build: " + err.Error())
	}

	type gqlRequest struct {
		Query         string                 `json:"query"`
		OperationName string                 `json:"operationName"`
		Variables     map[string]interface{} `json:"variables"`
	}

	return func(c *fiber.Ctx) error {
		var req gqlRequest
		if err := c.BodyParser(&req); err != nil {
			return errBadRequest(c, "invalid request body")
		}

		result := graphql.Do(graphql.Params{
			Schema:         schema,
			RequestString:  req.Query,
			VariableValues: req.Variables,
			OperationName:  req.OperationName,
			Context:        c.UserContext(),
		})

		return c.JSON(result)
	}
}
