package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type FilingRule struct{ ent.Schema }

func (FilingRule) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "filing_rules"},
	}
}

func (FilingRule) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty().Unique(),
		field.Int("priority").Default(0),
		field.Bool("is_active").Default(true),
		field.JSON("applicable_document_types", []string{}).Optional(),
		field.JSON("conditions", json.RawMessage{}),
		field.JSON("actions", json.RawMessage{}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (FilingRule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("is_active", "priority"),
	}
}
