package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/docuvault/docintel/constants"
	"github.com/docuvault/docintel/db/ent/schema/utils"
)

type ProcessJob struct{ ent.Schema }

func (ProcessJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "process_jobs"},
	}
}

func (ProcessJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FK
		field.UUID("document_id", uuid.UUID{}),
		field.UUID("tenant_id", uuid.UUID{}),
		field.String("status").
			Validate(utils.EnumValidator(constants.JobStatuses()...)),
		field.String("stage").Optional().Nillable(),
		field.Float32("confidence").Optional().Nillable(),
		field.UUID("template_id", uuid.UUID{}).Optional().Nillable(),
		field.String("error_message").Optional().Nillable(),
		field.Time("started_at").Optional().Nillable(),
		field.Time("finished_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ProcessJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("jobs").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (ProcessJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tenant_id", "status", "started_at"),
		index.Fields("document_id"),
	}
}
