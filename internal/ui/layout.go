package ui

// DefaultLayout returns the embedded shelves layout document.
func DefaultLayout() string { return defaultLayout }

// defaultLayout is the embedded shelves layout used when no -layout file is
// given. The decorator registry maps the classes to component constructors;
// unknown classes in a user-supplied file are skipped, not rejected.
const defaultLayout = `
id: root
classes: [container]
attrs: {orientation: horizontal}
children:
  - id: sidenav
    classes: [container]
    attrs: {orientation: vertical, scroll: start}
    children:
      - {id: nav-home, classes: [item], label: Home, attrs: {selected: "true"}}
      - {id: nav-movies, classes: [item], label: Movies}
      - {id: nav-series, classes: [item], label: Series}
      - {id: nav-live, classes: [item], label: Live TV}
      - {id: nav-kids, classes: [item], label: Kids}
      - {id: nav-settings, classes: [item], label: Settings}
  - id: shelves
    classes: [container]
    attrs: {orientation: vertical, scroll: start, selected: "true"}
    children:
      - id: shelf-continue
        classes: [shelf]
        label: Continue Watching
        attrs: {orientation: horizontal, scroll: middle}
        children:
          - {id: card-orbit, classes: [card], label: Orbit Decay}
          - {id: card-tides, classes: [card], label: Spring Tides}
          - {id: card-ember, classes: [card], label: Ember Falls}
          - {id: card-latitude, classes: [card], label: Latitude Zero}
          - {id: card-meridian, classes: [card], label: Meridian}
          - {id: card-wires, classes: [card], label: Crossed Wires}
          - {id: card-harbor, classes: [card], label: Harbor Lights}
          - {id: card-static, classes: [card], label: Static}
      - id: shelf-trending
        classes: [shelf]
        label: Trending Now
        attrs: {orientation: horizontal, scroll: middle}
        children:
          - {id: card-glasshouse, classes: [card], label: The Glasshouse}
          - {id: card-copperfield, classes: [card], label: Copperfield Lane}
          - {id: card-offline, classes: [card], label: Offline, attrs: {disabled: "true"}}
          - {id: card-northsea, classes: [card], label: North Sea Diaries}
          - {id: card-paperboats, classes: [card], label: Paper Boats}
          - {id: card-lowlight, classes: [card], label: Low Light}
          - {id: card-junction, classes: [card], label: Junction 9}
          - {id: card-driftwood, classes: [card], label: Driftwood}
      - id: shelf-new
        classes: [shelf]
        label: New Releases
        attrs: {orientation: horizontal, scroll: middle}
        children:
          - {id: card-signal, classes: [card], label: Signal Hill}
          - {id: card-monsoon, classes: [card], label: Monsoon Season}
          - {id: card-ledger, classes: [card], label: The Ledger}
          - {id: card-halfmoon, classes: [card], label: Half Moon Bay}
          - {id: card-fielday, classes: [card], label: Field Day}
          - {id: card-undertow, classes: [card], label: Undertow}
`
