package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/db/ent/schema/utils"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("tenant_id", uuid.UUID{}),
		field.String("file_name").NotEmpty(),
		field.String("file_path").NotEmpty(),
		field.String("document_type").Default(string(constants.Unknown)).
			Validate(utils.EnumValidator(constants.DocumentTypes()...)),
		field.String("language").Default("eng"),
		field.String("status").Optional().Nillable(),
		field.String("classification").Optional().Nillable(),
		field.JSON("tags", []string{}).Optional(),
		field.JSON("metadata", json.RawMessage{}).Optional(),
		field.String("client_id").Optional().Nillable(),
		field.String("portfolio_id").Optional().Nillable(),
		field.Time("document_date").Optional().Nillable(),
		field.Bytes("content_hash").NotEmpty().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.Int("file_size").NonNegative(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Document) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE document -> MANY jobs
		edge.To("jobs", ProcessJob.Type),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "content_hash").Unique(),
		index.Fields("tenant_id", "document_type"),
		index.Fields("tenant_id", "created_at"),
	}
}
