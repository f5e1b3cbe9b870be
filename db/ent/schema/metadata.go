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

// Area, System and TestPackage are the reference entities discovered
// implicitly during imports. Each is naturally keyed by (project_id, name);
// the unique index is what makes insert-or-skip retries safe.

type Area struct{ ent.Schema }

func (Area) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "areas"},
	}
}

func (Area) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("description").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (Area) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("areas").
			Field("project_id").
			Required().
			Unique(),
		edge.To("drawings", Drawing.Type),
		edge.To("components", Component.Type),
	}
}

func (Area) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "name").Unique(),
	}
}

type System struct{ ent.Schema }

func (System) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "systems"},
	}
}

func (System) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("description").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (System) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("systems").
			Field("project_id").
			Required().
			Unique(),
		edge.To("drawings", Drawing.Type),
		edge.To("components", Component.Type),
	}
}

func (System) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "name").Unique(),
	}
}

type TestPackage struct{ ent.Schema }

func (TestPackage) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "test_packages"},
	}
}

func (TestPackage) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("project_id", uuid.UUID{}),
		field.String("name").NotEmpty(),
		field.String("description").Optional().Nillable(),
		field.Time("created_at").Default(time.Now),
	}
}

func (TestPackage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("test_packages").
			Field("project_id").
			Required().
			Unique(),
		edge.To("components", Component.Type),
	}
}

func (TestPackage) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("project_id", "name").Unique(),
	}
}
