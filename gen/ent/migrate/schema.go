// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AreasColumns holds the columns for the "areas" table.
	AreasColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// AreasTable holds the schema information for the "areas" table.
	AreasTable = &schema.Table{
		Name:       "areas",
		Columns:    AreasColumns,
		PrimaryKey: []*schema.Column{AreasColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "areas_projects_areas",
				Columns:    []*schema.Column{AreasColumns[4]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "area_project_id_name",
				Unique:  true,
				Columns: []*schema.Column{AreasColumns[4], AreasColumns[1]},
			},
		},
	}
	// ComponentsColumns holds the columns for the "components" table.
	ComponentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "type", Type: field.TypeString},
		{Name: "identity_key", Type: field.TypeString},
		{Name: "commodity_code", Type: field.TypeString, Nullable: true},
		{Name: "spec", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "size", Type: field.TypeString, Nullable: true},
		{Name: "quantity", Type: field.TypeInt, Default: 1},
		{Name: "seq", Type: field.TypeInt, Default: 1},
		{Name: "comments", Type: field.TypeString, Nullable: true},
		{Name: "attributes", Type: field.TypeJSON, Nullable: true},
		{Name: "current_milestones", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "area_id", Type: field.TypeUUID, Nullable: true},
		{Name: "drawing_id", Type: field.TypeUUID, Nullable: true},
		{Name: "project_id", Type: field.TypeUUID},
		{Name: "system_id", Type: field.TypeUUID, Nullable: true},
		{Name: "test_package_id", Type: field.TypeUUID, Nullable: true},
	}
	// ComponentsTable holds the schema information for the "components" table.
	ComponentsTable = &schema.Table{
		Name:       "components",
		Columns:    ComponentsColumns,
		PrimaryKey: []*schema.Column{ComponentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "components_areas_components",
				Columns:    []*schema.Column{ComponentsColumns[14]},
				RefColumns: []*schema.Column{AreasColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "components_drawings_components",
				Columns:    []*schema.Column{ComponentsColumns[15]},
				RefColumns: []*schema.Column{DrawingsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "components_projects_components",
				Columns:    []*schema.Column{ComponentsColumns[16]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "components_systems_components",
				Columns:    []*schema.Column{ComponentsColumns[17]},
				RefColumns: []*schema.Column{SystemsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "components_test_packages_components",
				Columns:    []*schema.Column{ComponentsColumns[18]},
				RefColumns: []*schema.Column{TestPackagesColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "component_project_id_type_identity_key",
				Unique:  true,
				Columns: []*schema.Column{ComponentsColumns[16], ComponentsColumns[1], ComponentsColumns[2]},
			},
			{
				Name:    "component_project_id_type",
				Unique:  false,
				Columns: []*schema.Column{ComponentsColumns[16], ComponentsColumns[1]},
			},
		},
	}
	// DrawingsColumns holds the columns for the "drawings" table.
	DrawingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "number", Type: field.TypeString},
		{Name: "norm_number", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "revision", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "area_id", Type: field.TypeUUID, Nullable: true},
		{Name: "project_id", Type: field.TypeUUID},
		{Name: "system_id", Type: field.TypeUUID, Nullable: true},
	}
	// DrawingsTable holds the schema information for the "drawings" table.
	DrawingsTable = &schema.Table{
		Name:       "drawings",
		Columns:    DrawingsColumns,
		PrimaryKey: []*schema.Column{DrawingsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "drawings_areas_drawings",
				Columns:    []*schema.Column{DrawingsColumns[7]},
				RefColumns: []*schema.Column{AreasColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "drawings_projects_drawings",
				Columns:    []*schema.Column{DrawingsColumns[8]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "drawings_systems_drawings",
				Columns:    []*schema.Column{DrawingsColumns[9]},
				RefColumns: []*schema.Column{SystemsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "drawing_project_id_norm_number",
				Unique:  true,
				Columns: []*schema.Column{DrawingsColumns[8], DrawingsColumns[2]},
			},
		},
	}
	// FieldWeldsColumns holds the columns for the "field_welds" table.
	FieldWeldsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "weld_number", Type: field.TypeString},
		{Name: "weld_type", Type: field.TypeString, Nullable: true},
		{Name: "material", Type: field.TypeString, Nullable: true},
		{Name: "current_milestones", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "drawing_id", Type: field.TypeUUID},
		{Name: "project_id", Type: field.TypeUUID},
		{Name: "welder_id", Type: field.TypeUUID, Nullable: true},
	}
	// FieldWeldsTable holds the schema information for the "field_welds" table.
	FieldWeldsTable = &schema.Table{
		Name:       "field_welds",
		Columns:    FieldWeldsColumns,
		PrimaryKey: []*schema.Column{FieldWeldsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "field_welds_drawings_field_welds",
				Columns:    []*schema.Column{FieldWeldsColumns[7]},
				RefColumns: []*schema.Column{DrawingsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "field_welds_projects_field_welds",
				Columns:    []*schema.Column{FieldWeldsColumns[8]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "field_welds_welders_welds",
				Columns:    []*schema.Column{FieldWeldsColumns[9]},
				RefColumns: []*schema.Column{WeldersColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "fieldweld_drawing_id_weld_number",
				Unique:  true,
				Columns: []*schema.Column{FieldWeldsColumns[7], FieldWeldsColumns[1]},
			},
			{
				Name:    "fieldweld_project_id",
				Unique:  false,
				Columns: []*schema.Column{FieldWeldsColumns[8]},
			},
		},
	}
	// ImportJobsColumns holds the columns for the "import_jobs" table.
	ImportJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "QUEUED"},
		{Name: "total_rows", Type: field.TypeInt, Default: 0},
		{Name: "valid_rows", Type: field.TypeInt, Default: 0},
		{Name: "skipped_rows", Type: field.TypeInt, Default: 0},
		{Name: "error_rows", Type: field.TypeInt, Default: 0},
		{Name: "result", Type: field.TypeJSON, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// ImportJobsTable holds the schema information for the "import_jobs" table.
	ImportJobsTable = &schema.Table{
		Name:       "import_jobs",
		Columns:    ImportJobsColumns,
		PrimaryKey: []*schema.Column{ImportJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "import_jobs_projects_import_jobs",
				Columns:    []*schema.Column{ImportJobsColumns[12]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "importjob_project_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ImportJobsColumns[12], ImportJobsColumns[2], ImportJobsColumns[9]},
			},
		},
	}
	// ProjectsColumns holds the columns for the "projects" table.
	ProjectsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "job_number", Type: field.TypeString, Nullable: true},
		{Name: "client", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProjectsTable holds the schema information for the "projects" table.
	ProjectsTable = &schema.Table{
		Name:       "projects",
		Columns:    ProjectsColumns,
		PrimaryKey: []*schema.Column{ProjectsColumns[0]},
	}
	// SystemsColumns holds the columns for the "systems" table.
	SystemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// SystemsTable holds the schema information for the "systems" table.
	SystemsTable = &schema.Table{
		Name:       "systems",
		Columns:    SystemsColumns,
		PrimaryKey: []*schema.Column{SystemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "systems_projects_systems",
				Columns:    []*schema.Column{SystemsColumns[4]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "system_project_id_name",
				Unique:  true,
				Columns: []*schema.Column{SystemsColumns[4], SystemsColumns[1]},
			},
		},
	}
	// TestPackagesColumns holds the columns for the "test_packages" table.
	TestPackagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// TestPackagesTable holds the schema information for the "test_packages" table.
	TestPackagesTable = &schema.Table{
		Name:       "test_packages",
		Columns:    TestPackagesColumns,
		PrimaryKey: []*schema.Column{TestPackagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "test_packages_projects_test_packages",
				Columns:    []*schema.Column{TestPackagesColumns[4]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "testpackage_project_id_name",
				Unique:  true,
				Columns: []*schema.Column{TestPackagesColumns[4], TestPackagesColumns[1]},
			},
		},
	}
	// WeldersColumns holds the columns for the "welders" table.
	WeldersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "stencil", Type: field.TypeString},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "project_id", Type: field.TypeUUID},
	}
	// WeldersTable holds the schema information for the "welders" table.
	WeldersTable = &schema.Table{
		Name:       "welders",
		Columns:    WeldersColumns,
		PrimaryKey: []*schema.Column{WeldersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "welders_projects_welders",
				Columns:    []*schema.Column{WeldersColumns[5]},
				RefColumns: []*schema.Column{ProjectsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "welder_project_id_stencil",
				Unique:  true,
				Columns: []*schema.Column{WeldersColumns[5], WeldersColumns[2]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AreasTable,
		ComponentsTable,
		DrawingsTable,
		FieldWeldsTable,
		ImportJobsTable,
		ProjectsTable,
		SystemsTable,
		TestPackagesTable,
		WeldersTable,
	}
)

func init() {
	AreasTable.ForeignKeys[0].RefTable = ProjectsTable
	AreasTable.Annotation = &entsql.Annotation{
		Table: "areas",
	}
	ComponentsTable.ForeignKeys[0].RefTable = AreasTable
	ComponentsTable.ForeignKeys[1].RefTable = DrawingsTable
	ComponentsTable.ForeignKeys[2].RefTable = ProjectsTable
	ComponentsTable.ForeignKeys[3].RefTable = SystemsTable
	ComponentsTable.ForeignKeys[4].RefTable = TestPackagesTable
	ComponentsTable.Annotation = &entsql.Annotation{
		Table: "components",
	}
	DrawingsTable.ForeignKeys[0].RefTable = AreasTable
	DrawingsTable.ForeignKeys[1].RefTable = ProjectsTable
	DrawingsTable.ForeignKeys[2].RefTable = SystemsTable
	DrawingsTable.Annotation = &entsql.Annotation{
		Table: "drawings",
	}
	FieldWeldsTable.ForeignKeys[0].RefTable = DrawingsTable
	FieldWeldsTable.ForeignKeys[1].RefTable = ProjectsTable
	FieldWeldsTable.ForeignKeys[2].RefTable = WeldersTable
	FieldWeldsTable.Annotation = &entsql.Annotation{
		Table: "field_welds",
	}
	ImportJobsTable.ForeignKeys[0].RefTable = ProjectsTable
	ImportJobsTable.Annotation = &entsql.Annotation{
		Table: "import_jobs",
	}
	ProjectsTable.Annotation = &entsql.Annotation{
		Table: "projects",
	}
	SystemsTable.ForeignKeys[0].RefTable = ProjectsTable
	SystemsTable.Annotation = &entsql.Annotation{
		Table: "systems",
	}
	TestPackagesTable.ForeignKeys[0].RefTable = ProjectsTable
	TestPackagesTable.Annotation = &entsql.Annotation{
		Table: "test_packages",
	}
	WeldersTable.ForeignKeys[0].RefTable = ProjectsTable
	WeldersTable.Annotation = &entsql.Annotation{
		Table: "welders",
	}
}
