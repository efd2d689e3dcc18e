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

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/db/ent/schema/utils"
)

type DocumentTemplate struct{ ent.Schema }

func (DocumentTemplate) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_templates"},
	}
}

func (DocumentTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("document_type").
			Validate(utils.EnumValidator(constants.DocumentTypes()...)),
		field.String("language").Default("eng"),
		// pattern/rule lists are stored as JSON and decoded into entity
		// types by the repository
		field.JSON("patterns", json.RawMessage{}),
		field.JSON("extraction_rules", json.RawMessage{}).Optional(),
		field.JSON("validation_rules", json.RawMessage{}).Optional(),
		field.Bool("is_active").Default(true),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (DocumentTemplate) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name", "language").Unique(),
		index.Fields("document_type", "is_active"),
	}
}
