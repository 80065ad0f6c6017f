// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CvsColumns holds the columns for the "cvs" table.
	CvsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "first_name", Type: field.TypeString, Nullable: true},
		{Name: "last_name", Type: field.TypeString, Nullable: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "location", Type: field.TypeString, Nullable: true},
		{Name: "headline", Type: field.TypeString, Nullable: true},
		{Name: "experiences", Type: field.TypeJSON, Nullable: true},
		{Name: "educations", Type: field.TypeJSON, Nullable: true},
		{Name: "skills", Type: field.TypeJSON, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// CvsTable holds the schema information for the "cvs" table.
	CvsTable = &schema.Table{
		Name:       "cvs",
		Columns:    CvsColumns,
		PrimaryKey: []*schema.Column{CvsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "cvs_profiles_cvs",
				Columns:    []*schema.Column{CvsColumns[13]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "recognition_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "ocr_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "candidate_json", Type: field.TypeJSON, Nullable: true},
		{Name: "engine_name", Type: field.TypeString, Nullable: true},
		{Name: "engine_params", Type: field.TypeJSON, Nullable: true},
		{Name: "cv_id", Type: field.TypeUUID, Nullable: true},
		{Name: "profile_id", Type: field.TypeUUID},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_cvs_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[12]},
				RefColumns: []*schema.Column{CvsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_job_profiles_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[13]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
			{
				Symbol:     "extract_job_scan_files_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[14]},
				RefColumns: []*schema.Column{ScanFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_profile_id_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[13], ExtractJobColumns[4], ExtractJobColumns[2]},
			},
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[14]},
			},
			{
				Name:    "extractjob_cv_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[12]},
			},
		},
	}
	// ProfilesColumns holds the columns for the "profiles" table.
	ProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "default_language", Type: field.TypeString, Size: 3, Default: "fra"},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ProfilesTable holds the schema information for the "profiles" table.
	ProfilesTable = &schema.Table{
		Name:       "profiles",
		Columns:    ProfilesColumns,
		PrimaryKey: []*schema.Column{ProfilesColumns[0]},
	}
	// ScanFilesColumns holds the columns for the "scan_files" table.
	ScanFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "profile_id", Type: field.TypeUUID},
	}
	// ScanFilesTable holds the schema information for the "scan_files" table.
	ScanFilesTable = &schema.Table{
		Name:       "scan_files",
		Columns:    ScanFilesColumns,
		PrimaryKey: []*schema.Column{ScanFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "scan_files_profiles_files",
				Columns:    []*schema.Column{ScanFilesColumns[7]},
				RefColumns: []*schema.Column{ProfilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "scanfile_profile_id_content_hash",
				Unique:  true,
				Columns: []*schema.Column{ScanFilesColumns[7], ScanFilesColumns[2]},
			},
			{
				Name:    "scanfile_profile_id_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{ScanFilesColumns[7], ScanFilesColumns[6]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CvsTable,
		ExtractJobTable,
		ProfilesTable,
		ScanFilesTable,
	}
)

func init() {
	CvsTable.ForeignKeys[0].RefTable = ProfilesTable
	CvsTable.Annotation = &entsql.Annotation{
		Table: "cvs",
	}
	ExtractJobTable.ForeignKeys[0].RefTable = CvsTable
	ExtractJobTable.ForeignKeys[1].RefTable = ProfilesTable
	ExtractJobTable.ForeignKeys[2].RefTable = ScanFilesTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	ProfilesTable.Annotation = &entsql.Annotation{
		Table: "profiles",
	}
	ScanFilesTable.ForeignKeys[0].RefTable = ProfilesTable
	ScanFilesTable.Annotation = &entsql.Annotation{
		Table: "scan_files",
	}
}
