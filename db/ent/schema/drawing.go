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

type Drawing struct{ ent.Schema }

func (Drawing) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "drawings"},
	}
}

func (Drawing) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.UUID("area_id", uuid.UUID{}).Optional().Nillable(),
		field.UUID("system_id", uuid.UUID{}).Optional().Nillable(),
		// number as supplied in the source document
		field.String("number").NotEmpty(),
		// norm_number is the normalized form used for natural-key lookups
		field.String("norm_number").NotEmpty(),
		field.String("title").Optional().Nillable(),
		field.String("revision").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Drawing) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("drawings").
			Field("project_id").
			Required().
			Unique(),
		edge.From("area", Area.Type).
			Ref("drawings").
			Field("area_id").
			Unique(),
		edge.From("system", System.Type).
			Ref("drawings").
			Field("system_id").
			Unique(),
		edge.To("components", Component.Type),
		edge.To("field_welds", FieldWeld.Type),
	}
}

func (Drawing) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "norm_number").Unique(),
	}
}
