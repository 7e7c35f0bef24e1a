package swagger

import (
	"fmt"
	"html"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"

	apicontract "github.com/tuanvumaihuynh/hvac-catalog/api-contract"
)

const (
	// swaggerURL is the URL path where the Swagger UI will be served
	swaggerURL = "/docs"

	// swaggerSpecURL is the URL path where the OpenAPI specification will be served
	swaggerSpecURL = "/docs/openapi.yml"

	// swaggerJSONURL serves the parsed specification as JSON
	swaggerJSONURL = "/docs/openapi.json"
)

// Register registers the swagger handler on the given router. doc is the
// parsed form of the embedded specification.
func Register(r chi.Router, doc *openapi3.T) error {
	jsonBytes, err := doc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshal openapi spec: %w", err)
	}

	title := "API"
	if doc.Info != nil && doc.Info.Title != "" {
		title = doc.Info.Title
	}
	templateBytes := []byte(getTemplate(title, swaggerSpecURL))

	r.Get(swaggerURL, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		w.Write(templateBytes)
	})

	specBytes := apicontract.GetSpecBytes()
	r.Get(swaggerSpecURL, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		w.Write(specBytes)
	})

	r.Get(swaggerJSONURL, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		//nolint:errcheck
		w.Write(jsonBytes)
	})

	return nil
}

// getTemplate returns the Swagger UI page titled after the contract.
func getTemplate(title, specPath string) string {
	title = html.EscapeString(title)
	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <meta name="description" content="%[1]s" />
  <title>%[1]s</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5.29.3/swagger-ui.css" />
  <link rel="icon" type="image/png" href="https://static1.smartbear.co/swagger/media/assets/swagger_fav.png" sizes="32x32" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://unpkg.com/swagger-ui-dist@5.29.3/swagger-ui-bundle.js" crossorigin></script>
<script>
  window.onload = () => {
    window.ui = SwaggerUIBundle({
      url: '%[2]s',
      dom_id: '#swagger-ui',
      deepLinking: true,
      docExpansion: 'list',
      defaultModelsExpandDepth: 0,
    });
  };
</script>
</body>
</html>
`, title, specPath)
}
