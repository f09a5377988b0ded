// Package embedded содержит встроенные ресурсы приложения.
package embedded

import (
	_ "embed"
)

// IconEnabled - иконка при включённом ремаппинге (зелёная).
//
//go:embed icon_enabled.png
var IconEnabled []byte

// IconDisabled - иконка при выключенном ремаппинге (серая).
//
//go:embed icon_disabled.png
var IconDisabled []byte
