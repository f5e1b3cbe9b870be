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
)

type FieldWeld struct{ ent.Schema }

func (FieldWeld) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "field_welds"},
	}
}

func (FieldWeld) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs so we can define the composite unique index
		field.UUID("project_id", uuid.UUID{}),
		field.UUID("drawing_id", uuid.UUID{}),
		field.UUID("welder_id", uuid.UUID{}).Optional().Nillable(),
		field.String("weld_number").NotEmpty(),
		field.String("weld_type").Optional().Nillable(),
		field.String("material").Optional().Nillable(),
		field.JSON("current_milestones", json.RawMessage{}).Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (FieldWeld) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("field_welds").
			Field("project_id").
			Required().
			Unique(),
		edge.From("drawing", Drawing.Type).
			Ref("field_welds").
			Field("drawing_id").
			Required().
			Unique(),
		edge.From("welder", Welder.Type).
			Ref("welds").
			Field("welder_id").
			Unique(),
	}
}

func (FieldWeld) Indexes() []ent.Index {
	return []ent.Index{
		// welds are naturally keyed by (drawing, weld_number)
		index.Fields("drawing_id", "weld_number").Unique(),
		index.Fields("project_id"),
	}
}
