package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
	"github.com/pipetrak/pipetrak/constants"
	"github.com/pipetrak/pipetrak/db/ent/schema/utils"
)

type ImportJob struct{ ent.Schema }

func (ImportJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "import_jobs"},
	}
}

func (ImportJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("status").
			Default(string(constants.ImportQueued)).
			Validate(utils.EnumValidator(constants.ImportJobStatuses...)),
		field.Int("total_rows").Default(0).NonNegative(),
		field.Int("valid_rows").Default(0).NonNegative(),
		field.Int("skipped_rows").Default(0).NonNegative(),
		field.Int("error_rows").Default(0).NonNegative(),
		field.JSON("result", json.RawMessage{}).Optional(),
		field.String("error_message").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("started_at").Optional().Nillable(),
		field.Time("finished_at").Optional().Nillable(),
	}
}

func (ImportJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("import_jobs").
			Field("project_id").
			Required().
			Unique(),
	}
}

func (ImportJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "status", "created_at"),
	}
}
