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
)

type Welder struct{ ent.Schema }

func (Welder) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "welders"},
	}
}

func (Welder) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		// stencil is the welder's stamp mark, unique within a project
		field.String("stencil").NotEmpty(),
		field.Bool("active").Default(true),
		field.Time("created_at").Default(time.Now),
	}
}

func (Welder) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("welders").
			Field("project_id").
			Required().
			Unique(),
		edge.To("welds", FieldWeld.Type),
	}
}

func (Welder) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "stencil").Unique(),
	}
}
