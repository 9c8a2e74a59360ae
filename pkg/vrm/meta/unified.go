package meta

// Tokens written into UnifiedMetadata in place of missing or boolean values.
const (
	Sentinel   = "--"
	Allowed    = "Allowed"
	NotAllowed = "Not allowed"

	AuthorSeparator = ", "
)

// Field names in report order.
const (
	FieldFileName           = "file_name"
	FieldVRMVersion         = "vrm_version"
	FieldModelName          = "model_name"
	FieldAuthor             = "author"
	FieldContact            = "contact"
	FieldReferenceURL       = "reference_url"
	FieldCommercialUsage    = "commercial_usage"
	FieldRedistribution     = "redistribution"
	FieldCreditNotation     = "credit_notation"
	FieldModification       = "modification"
	FieldAvatarPermission   = "avatar_permission"
	FieldSexualExpression   = "sexual_expression"
	FieldViolenceExpression = "violence_expression"
	FieldLicense            = "license"
	FieldOtherPermissionURL = "other_permission_url"
	FieldOtherLicenseURL    = "other_license_url"
)

// Fields lists every UnifiedMetadata field in its stable display order.
var Fields = []string{
	FieldFileName,
	FieldVRMVersion,
	FieldModelName,
	FieldAuthor,
	FieldContact,
	FieldReferenceURL,
	FieldCommercialUsage,
	FieldRedistribution,
	FieldCreditNotation,
	FieldModification,
	FieldAvatarPermission,
	FieldSexualExpression,
	FieldViolenceExpression,
	FieldLicense,
	FieldOtherPermissionURL,
	FieldOtherLicenseURL,
}

// UnifiedMetadata is the schema-independent license record. Every field is
// populated; Sentinel marks an unknown value.
type UnifiedMetadata struct {
	FileName           string `json:"file_name"`
	VRMVersion         string `json:"vrm_version"`
	ModelName          string `json:"model_name"`
	Author             string `json:"author"`
	Contact            string `json:"contact"`
	ReferenceURL       string `json:"reference_url"`
	CommercialUsage    string `json:"commercial_usage"`
	Redistribution     string `json:"redistribution"`
	CreditNotation     string `json:"credit_notation"`
	Modification       string `json:"modification"`
	AvatarPermission   string `json:"avatar_permission"`
	SexualExpression   string `json:"sexual_expression"`
	ViolenceExpression string `json:"violence_expression"`
	License            string `json:"license"`
	OtherPermissionURL string `json:"other_permission_url"`
	OtherLicenseURL    string `json:"other_license_url"`
}

// Get returns the value of a named field, or Sentinel for an unknown name.
func (m UnifiedMetadata) Get(field string) string {
	switch field {
	case FieldFileName:
		return m.FileName
	case FieldVRMVersion:
		return m.VRMVersion
	case FieldModelName:
		return m.ModelName
	case FieldAuthor:
		return m.Author
	case FieldContact:
		return m.Contact
	case FieldReferenceURL:
		return m.ReferenceURL
	case FieldCommercialUsage:
		return m.CommercialUsage
	case FieldRedistribution:
		return m.Redistribution
	case FieldCreditNotation:
		return m.CreditNotation
	case FieldModification:
		return m.Modification
	case FieldAvatarPermission:
		return m.AvatarPermission
	case FieldSexualExpression:
		return m.SexualExpression
	case FieldViolenceExpression:
		return m.ViolenceExpression
	case FieldLicense:
		return m.License
	case FieldOtherPermissionURL:
		return m.OtherPermissionURL
	case FieldOtherLicenseURL:
		return m.OtherLicenseURL
	default:
		return Sentinel
	}
}

// Values returns all fields in Fields order.
func (m UnifiedMetadata) Values() []string {
	out := make([]string, len(Fields))
	for i, f := range Fields {
		out[i] = m.Get(f)
	}
	return out
}
