package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Project struct{ ent.Schema }

func (Project) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "projects"},
	}
}

func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.String("name").NotEmpty(),
		field.String("job_number").Optional().Nillable(),
		field.String("client").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("areas", Area.Type),
		edge.To("systems", System.Type),
		edge.To("test_packages", TestPackage.Type),
		edge.To("drawings", Drawing.Type),
		edge.To("components", Component.Type),
		edge.To("field_welds", FieldWeld.Type),
		edge.To("welders", Welder.Type),
		edge.To("import_jobs", ImportJob.Type),
	}
}
