package constant

// CatalogTemplate is a text/template for scaffolding new Lua catalogs.
const CatalogTemplate = `{{ $divider := repeat "-" (plus (max (len .Name) (len .Author) 3) 12) }}{{ $divider }}
-- @name    {{ .Name }}
-- @author  {{ .Author }}
{{ $divider }}

-- A catalog returns a table of color strings. Nested tables become
-- dotted names such as brand.primary. Any CSS color string is accepted:
-- #rgb, #rrggbb, #rrggbbaa, rgb(), rgba(), hsl(), hsla() or a named color.

local catalog = {
	brand = {
		primary   = "#3366ff",
		secondary = "rgb(255 153 0)",
	},
}

-- Entries can be generated.
local grays = {}
for i = 0, {{ .Steps }} do
	local v = math.floor(i * 255 / {{ .Steps }})
	grays["gray" .. i] = string.format("rgb(%d, %d, %d)", v, v, v)
end
catalog.grays = grays

return catalog

-- ex: ts=4 sw=4 et filetype=lua
`
