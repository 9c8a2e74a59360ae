package meta

import (
	vrmerrors "github.com/provide-io/vrmsort/pkg/vrm/errors"
)

// adapter turns one generation's meta object into a UnifiedMetadata.
type adapter func(native map[string]any, fileID string) UnifiedMetadata

var adapters = map[SchemaVersion]adapter{
	Legacy:  adaptLegacy,
	Current: adaptCurrent,
}

// Adapt produces the unified record for document. The adapter is chosen
// solely by version.
func Adapt(document any, version SchemaVersion, fileID string) (UnifiedMetadata, error) {
	fn, ok := adapters[version]
	if !ok {
		return UnifiedMetadata{}, &vrmerrors.SchemaError{File: fileID, Err: vrmerrors.ErrMetadataNotFound}
	}
	native, err := Native(document, version)
	if err != nil {
		return UnifiedMetadata{}, &vrmerrors.SchemaError{File: fileID, Err: vrmerrors.ErrMetadataNotFound}
	}
	return fn(native, fileID), nil
}

func adaptLegacy(m map[string]any, fileID string) UnifiedMetadata {
	return UnifiedMetadata{
		FileName:           fileID,
		VRMVersion:         Legacy.String(),
		ModelName:          text(m, "title"),
		Author:             text(m, "author"),
		Contact:            text(m, "contactInformation"),
		ReferenceURL:       text(m, "reference"),
		CommercialUsage:    text(m, "commercialUssageName"),
		Redistribution:     queryParam(m, "otherPermissionUrl", "redistribution"),
		CreditNotation:     text(m, "creditNotation"),
		Modification:       text(m, "modification"),
		AvatarPermission:   text(m, "allowedUserName"),
		SexualExpression:   text(m, "sexualUssageName"),
		ViolenceExpression: text(m, "violentUssageName"),
		License:            text(m, "licenseName"),
		OtherPermissionURL: text(m, "otherPermissionUrl"),
		OtherLicenseURL:    text(m, "otherLicenseUrl"),
	}
}

func adaptCurrent(m map[string]any, fileID string) UnifiedMetadata {
	return UnifiedMetadata{
		FileName:           fileID,
		VRMVersion:         Current.String(),
		ModelName:          text(m, "name"),
		Author:             joined(m, "authors"),
		Contact:            Sentinel,
		ReferenceURL:       Sentinel,
		CommercialUsage:    text(m, "commercialUsage"),
		Redistribution:     triState(m, "allowRedistribution"),
		CreditNotation:     text(m, "creditNotation"),
		Modification:       text(m, "modification"),
		AvatarPermission:   text(m, "avatarPermission"),
		SexualExpression:   triState(m, "allowExcessivelySexualUsage"),
		ViolenceExpression: triState(m, "allowExcessivelyViolentUsage"),
		License:            text(m, "licenseUrl"),
		OtherPermissionURL: Sentinel,
		OtherLicenseURL:    Sentinel,
	}
}
