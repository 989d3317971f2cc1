package domain

import (
	"cmp"
	"slices"
	"strings"

	"go.trai.ch/zerr"
)

// Platform identifies the Apple platform a build unit targets.
// The string value is the identifier that enters the fingerprint.
type Platform string

const (
	// PlatformIOS targets iOS.
	PlatformIOS Platform = "iOS"
	// PlatformMacOS targets macOS.
	PlatformMacOS Platform = "macOS"
	// PlatformTvOS targets tvOS.
	PlatformTvOS Platform = "tvOS"
	// PlatformWatchOS targets watchOS.
	PlatformWatchOS Platform = "watchOS"
)

var platforms = []Platform{PlatformIOS, PlatformMacOS, PlatformTvOS, PlatformWatchOS}

// ParsePlatform matches s case-insensitively against the known platforms.
func ParsePlatform(s string) (Platform, error) {
	for _, p := range platforms {
		if strings.EqualFold(string(p), s) {
			return p, nil
		}
	}
	return "", zerr.With(ErrInvalidPlatform, "platform", s)
}

// Product is the kind of artifact a build unit produces.
type Product string

const (
	// ProductApp is an application bundle.
	ProductApp Product = "app"
	// ProductStaticLibrary is a static library.
	ProductStaticLibrary Product = "static_library"
	// ProductDynamicLibrary is a dynamic library.
	ProductDynamicLibrary Product = "dynamic_library"
	// ProductFramework is a dynamic framework, the only cacheable kind.
	ProductFramework Product = "framework"
	// ProductStaticFramework is a static framework.
	ProductStaticFramework Product = "static_framework"
	// ProductUnitTests is a unit test bundle.
	ProductUnitTests Product = "unit_tests"
	// ProductUITests is a UI test bundle.
	ProductUITests Product = "ui_tests"
	// ProductBundle is a resource bundle.
	ProductBundle Product = "bundle"
	// ProductAppExtension is an app extension.
	ProductAppExtension Product = "app_extension"
	// ProductWatch2App is a watchOS 2 application.
	ProductWatch2App Product = "watch2_app"
	// ProductWatch2Extension is a watchOS 2 extension.
	ProductWatch2Extension Product = "watch2_extension"
	// ProductMessagesExtension is an iMessage extension.
	ProductMessagesExtension Product = "messages_extension"
	// ProductStickerPackExtension is an iMessage sticker pack.
	ProductStickerPackExtension Product = "sticker_pack_extension"
)

var products = []Product{
	ProductApp,
	ProductStaticLibrary,
	ProductDynamicLibrary,
	ProductFramework,
	ProductStaticFramework,
	ProductUnitTests,
	ProductUITests,
	ProductBundle,
	ProductAppExtension,
	ProductWatch2App,
	ProductWatch2Extension,
	ProductMessagesExtension,
	ProductStickerPackExtension,
}

// ParseProduct returns the Product whose identifier equals s.
func ParseProduct(s string) (Product, error) {
	for _, p := range products {
		if string(p) == s {
			return p, nil
		}
	}
	return "", zerr.With(ErrInvalidProduct, "product", s)
}

// IsCacheable reports whether units of this product kind get a fingerprint.
// Only dynamic frameworks are cache candidates.
func (p Product) IsCacheable() bool {
	return p == ProductFramework
}

// SourceFile is a compiled source with optional per-file compiler flags.
type SourceFile struct {
	Path string
	// CompilerFlags is empty when the file has no per-file flags.
	CompilerFlags string
}

// HasCompilerFlags reports whether per-file flags were declared.
func (s SourceFile) HasCompilerFlags() bool {
	return s.CompilerFlags != ""
}

// SortSources returns a copy of sources ordered by path, then by compiler flags.
func SortSources(sources []SourceFile) []SourceFile {
	sorted := slices.Clone(sources)
	slices.SortFunc(sorted, func(a, b SourceFile) int {
		return cmp.Or(
			cmp.Compare(a.Path, b.Path),
			cmp.Compare(a.CompilerFlags, b.CompilerFlags),
		)
	})
	return sorted
}

// FileElementKind distinguishes plain files from folder references.
type FileElementKind string

const (
	// FileElementFile is a single file.
	FileElementFile FileElementKind = "file"
	// FileElementFolderReference is a directory copied as a whole.
	FileElementFolderReference FileElementKind = "folder_reference"
)

// FileElement is a resource entry of a build unit.
type FileElement struct {
	Path string
	Kind FileElementKind
}

// NewFile returns a FileElement for a single file.
func NewFile(path string) FileElement {
	return FileElement{Path: path, Kind: FileElementFile}
}

// NewFolderReference returns a FileElement for a folder reference.
func NewFolderReference(path string) FileElement {
	return FileElement{Path: path, Kind: FileElementFolderReference}
}

// IsFolderReference reports whether the element points at a directory.
func (f FileElement) IsFolderReference() bool {
	return f.Kind == FileElementFolderReference
}

// ScriptOrder places a build phase script before or after the compile phases.
type ScriptOrder string

const (
	// ScriptOrderPre runs before compilation.
	ScriptOrderPre ScriptOrder = "pre"
	// ScriptOrderPost runs after compilation.
	ScriptOrderPost ScriptOrder = "post"
)

// ParseScriptOrder parses "pre" or "post". The empty string defaults to pre.
func ParseScriptOrder(s string) (ScriptOrder, error) {
	switch ScriptOrder(strings.ToLower(s)) {
	case ScriptOrderPre, "":
		return ScriptOrderPre, nil
	case ScriptOrderPost:
		return ScriptOrderPost, nil
	default:
		return "", zerr.With(ErrInvalidScriptOrder, "order", s)
	}
}

// BuildPhaseScript is a custom script or tool run while building a unit.
// Tool and Path use the empty string when absent.
type BuildPhaseScript struct {
	Name                string
	Tool                string
	Path                string
	Order               ScriptOrder
	Arguments           []string
	InputPaths          []string
	OutputPaths         []string
	OutputFileListPaths []string
}

// BuildUnit is one compiled module of the dependency graph.
// All file paths are absolute and already glob-expanded.
type BuildUnit struct {
	Name           InternedString
	Platform       Platform
	Product        Product
	BundleID       string
	ProductName    string
	Sources        []SourceFile
	Resources      []FileElement
	CoreDataModels []string
	Actions        []BuildPhaseScript
	Dependencies   []InternedString
}

// IsCacheable reports whether the unit gets a fingerprint.
func (u *BuildUnit) IsCacheable() bool {
	return u.Product.IsCacheable()
}
