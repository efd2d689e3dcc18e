// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tenant_id", Type: field.TypeUUID},
		{Name: "file_name", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString, Default: "UNKNOWN"},
		{Name: "language", Type: field.TypeString, Default: "eng"},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "classification", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "client_id", Type: field.TypeString, Nullable: true},
		{Name: "portfolio_id", Type: field.TypeString, Nullable: true},
		{Name: "document_date", Type: field.TypeTime, Nullable: true},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_tenant_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[13]},
			},
			{
				Name:    "document_tenant_id_document_type",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[4]},
			},
			{
				Name:    "document_tenant_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[15]},
			},
		},
	}
	// DocumentTemplatesColumns holds the columns for the "document_templates" table.
	DocumentTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "document_type", Type: field.TypeString},
		{Name: "language", Type: field.TypeString, Default: "eng"},
		{Name: "patterns", Type: field.TypeJSON},
		{Name: "extraction_rules", Type: field.TypeJSON, Nullable: true},
		{Name: "validation_rules", Type: field.TypeJSON, Nullable: true},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DocumentTemplatesTable holds the schema information for the "document_templates" table.
	DocumentTemplatesTable = &schema.Table{
		Name:       "document_templates",
		Columns:    DocumentTemplatesColumns,
		PrimaryKey: []*schema.Column{DocumentTemplatesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "documenttemplate_name_language",
				Unique:  true,
				Columns: []*schema.Column{DocumentTemplatesColumns[1], DocumentTemplatesColumns[3]},
			},
			{
				Name:    "documenttemplate_document_type_is_active",
				Unique:  false,
				Columns: []*schema.Column{DocumentTemplatesColumns[2], DocumentTemplatesColumns[7]},
			},
		},
	}
	// FilingRulesColumns holds the columns for the "filing_rules" table.
	FilingRulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "priority", Type: field.TypeInt, Default: 0},
		{Name: "is_active", Type: field.TypeBool, Default: true},
		{Name: "applicable_document_types", Type: field.TypeJSON, Nullable: true},
		{Name: "conditions", Type: field.TypeJSON},
		{Name: "actions", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// FilingRulesTable holds the schema information for the "filing_rules" table.
	FilingRulesTable = &schema.Table{
		Name:       "filing_rules",
		Columns:    FilingRulesColumns,
		PrimaryKey: []*schema.Column{FilingRulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "filingrule_is_active_priority",
				Unique:  false,
				Columns: []*schema.Column{FilingRulesColumns[3], FilingRulesColumns[2]},
			},
		},
	}
	// ProcessJobsColumns holds the columns for the "process_jobs" table.
	ProcessJobsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "tenant_id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString},
		{Name: "stage", Type: field.TypeString, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "template_id", Type: field.TypeUUID, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "started_at", Type: field.TypeTime, Nullable: true},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "document_id", Type: field.TypeUUID},
	}
	// ProcessJobsTable holds the schema information for the "process_jobs" table.
	ProcessJobsTable = &schema.Table{
		Name:       "process_jobs",
		Columns:    ProcessJobsColumns,
		PrimaryKey: []*schema.Column{ProcessJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "process_jobs_documents_jobs",
				Columns:    []*schema.Column{ProcessJobsColumns[11]},
				RefColumns: []*schema.Column{DocumentsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "processjob_tenant_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessJobsColumns[1], ProcessJobsColumns[2], ProcessJobsColumns[7]},
			},
			{
				Name:    "processjob_document_id",
				Unique:  false,
				Columns: []*schema.Column{ProcessJobsColumns[11]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		DocumentsTable,
		DocumentTemplatesTable,
		FilingRulesTable,
		ProcessJobsTable,
	}
)

func init() {
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	DocumentTemplatesTable.Annotation = &entsql.Annotation{
		Table: "document_templates",
	}
	FilingRulesTable.Annotation = &entsql.Annotation{
		Table: "filing_rules",
	}
	ProcessJobsTable.ForeignKeys[0].RefTable = DocumentsTable
	ProcessJobsTable.Annotation = &entsql.Annotation{
		Table: "process_jobs",
	}
}
