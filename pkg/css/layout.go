package css

// Display is the CSS display property.
type Display string

const (
	DisplayBlock  Display = "block"
	DisplayInline Display = "inline"
	DisplayFlex   Display = "flex"
	DisplayGrid   Display = "grid"
	DisplayNone   Display = "none"
)

// FlexDirection sets the main axis of a flex container.
type FlexDirection string

const (
	DirRow           FlexDirection = "row"
	DirRowReverse    FlexDirection = "row-reverse"
	DirColumn        FlexDirection = "column"
	DirColumnReverse FlexDirection = "column-reverse"
)

// FlexWrap controls line wrapping in a flex container.
type FlexWrap string

const (
	WrapNoWrap      FlexWrap = "nowrap"
	WrapWrap        FlexWrap = "wrap"
	WrapWrapReverse FlexWrap = "wrap-reverse"
)

// JustifyContent distributes space along the main axis.
type JustifyContent string

const (
	JustifyFlexStart    JustifyContent = "flex-start"
	JustifyFlexEnd      JustifyContent = "flex-end"
	JustifyCenter       JustifyContent = "center"
	JustifySpaceBetween JustifyContent = "space-between"
	JustifySpaceAround  JustifyContent = "space-around"
	JustifySpaceEvenly  JustifyContent = "space-evenly"
	JustifyStart        JustifyContent = "start"
	JustifyEnd          JustifyContent = "end"
	JustifyStretch      JustifyContent = "stretch"
)

// AlignItems aligns items on the cross axis.
type AlignItems string

const (
	AlignItemsFlexStart AlignItems = "flex-start"
	AlignItemsFlexEnd   AlignItems = "flex-end"
	AlignItemsCenter    AlignItems = "center"
	AlignItemsBaseline  AlignItems = "baseline"
	AlignItemsStretch   AlignItems = "stretch"
	AlignItemsStart     AlignItems = "start"
	AlignItemsEnd       AlignItems = "end"
)

// AlignContent aligns lines of a multi-line container.
type AlignContent string

const (
	AlignContentFlexStart    AlignContent = "flex-start"
	AlignContentFlexEnd      AlignContent = "flex-end"
	AlignContentCenter       AlignContent = "center"
	AlignContentSpaceBetween AlignContent = "space-between"
	AlignContentSpaceAround  AlignContent = "space-around"
	AlignContentStretch      AlignContent = "stretch"
)

// AlignSelf overrides AlignItems for one item.
type AlignSelf string

const (
	AlignSelfAuto      AlignSelf = "auto"
	AlignSelfFlexStart AlignSelf = "flex-start"
	AlignSelfFlexEnd   AlignSelf = "flex-end"
	AlignSelfCenter    AlignSelf = "center"
	AlignSelfBaseline  AlignSelf = "baseline"
	AlignSelfStretch   AlignSelf = "stretch"
	AlignSelfStart     AlignSelf = "start"
	AlignSelfEnd       AlignSelf = "end"
)

// JustifyItems aligns grid items in their cell on the inline axis.
type JustifyItems string

const (
	JustifyItemsStart   JustifyItems = "start"
	JustifyItemsEnd     JustifyItems = "end"
	JustifyItemsCenter  JustifyItems = "center"
	JustifyItemsStretch JustifyItems = "stretch"
)

// GridAutoFlow controls auto-placement in a grid.
type GridAutoFlow string

const (
	FlowRow         GridAutoFlow = "row"
	FlowColumn      GridAutoFlow = "column"
	FlowRowDense    GridAutoFlow = "row dense"
	FlowColumnDense GridAutoFlow = "column dense"
)
