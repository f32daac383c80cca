package http

import (
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

type swaggerDoc struct {
	doc string
}

func (d swaggerDoc) ReadDoc() string {
	return d.doc
}

// registerSwaggerDoc publishes doc as the document echo-swagger serves at /swagger/doc.json.
// Only the first registration in a process takes effect.
func registerSwaggerDoc(doc *openapi3.T) error {
	if swag.GetSwagger(swag.Name) != nil {
		return nil
	}

	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	swag.Register(swag.Name, swaggerDoc{doc: string(raw)})
	return nil
}
