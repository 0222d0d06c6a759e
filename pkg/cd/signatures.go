package cd

// Signatures of the composite (rich text) namespace. Families are shared
// across namespaces: the same family and class can mean something else in an
// action, query or viewmap item, so these constants only identify records
// when the enclosing item is KindComposite.
const (
	// ── Paragraph and text formatting ────────────────────────────────────────
	SigParagraph           = byteSig | 129
	SigPabDefinition       = wordSig | 130
	SigPabReference        = byteSig | 131
	SigFieldPre36          = wordSig | 132
	SigText                = wordSig | 133
	SigDocument            = byteSig | 134
	SigMetafile            = wordSig | 135
	SigBitmap              = wordSig | 136
	SigField               = wordSig | 138
	SigFontTable           = wordSig | 139
	SigLink                = byteSig | 140
	SigLinkExport          = byteSig | 141
	SigHeader              = wordSig | 142
	SigKeyword             = wordSig | 143
	SigLink2               = wordSig | 145
	SigLinkExport2         = wordSig | 146
	SigCGM                 = wordSig | 147
	SigStyleName           = byteSig | 166
	SigPabHide             = wordSig | 187
	SigPabFormRef          = byteSig | 188
	SigTextEffect          = wordSig | 195
	SigHorizontalRule      = wordSig | 201
	SigAltText             = wordSig | 202
	SigAnchor              = wordSig | 203
	SigColor               = byteSig | 210
	SigVerticalAlign       = byteSig | 223
	SigFloatPosition       = byteSig | 224
	SigBidiText            = wordSig | 228
	SigBidiTextEffect      = wordSig | 229
	SigLargeParagraph      = wordSig | 6
	SigIgnore              = byteSig | 5
	SigDataFlags           = byteSig | 14
	SigBackgroundProps     = byteSig | 15
	SigTextProperty        = wordSig | 16
	SigSpanRecord          = wordSig | 17
	SigBoxSize             = byteSig | 27
	SigPositioning         = byteSig | 28
	SigLayer               = byteSig | 29
	SigSpanEnd             = byteSig | 31
	SigSpanBegin           = byteSig | 32
	SigTextPropertiesTable = wordSig | 33
	SigBackgroundColor     = byteSig | 35
	SigInline              = wordSig | 36
	SigLinkColors          = wordSig | 40
	SigID                  = wordSig | 42
	SigIDName              = wordSig | 43
	SigAlternateBegin      = wordSig | 51
	SigAlternateEnd        = wordSig | 52
	SigColumns             = wordSig | 55
	SigDECSField           = wordSig | 30

	// ── Tables ──────────────────────────────────────────────────────────────
	SigTableBegin         = byteSig | 163
	SigTableCell          = byteSig | 164
	SigTableEnd           = byteSig | 165
	SigNestedTableBegin   = byteSig | 207
	SigNestedTableCell    = byteSig | 208
	SigNestedTableEnd     = byteSig | 209
	SigTableCellColor     = byteSig | 211
	SigTableRowHeight     = byteSig | 226
	SigTableLabel         = wordSig | 227
	SigCellBackgroundData = wordSig | 238
	SigPreTableBegin      = wordSig | 251
	SigBorderInfo         = wordSig | 252
	SigTableCellHref2     = wordSig | 7
	SigHrefBorder         = wordSig | 8
	SigTableDataExtension = wordSig | 9
	SigTableRowData       = wordSig | 18
	SigTableCellHref      = wordSig | 41
	SigTableCellIDName    = wordSig | 44

	// ── Block delimiters ────────────────────────────────────────────────────
	SigBegin = byteSig | 221
	SigEnd   = byteSig | 222

	// ── Graphics and resources ──────────────────────────────────────────────
	SigFileSegment      = longSig | 96
	SigFileHeader       = longSig | 97
	SigBitmapHeader     = longSig | 100
	SigBitmapSegment    = longSig | 101
	SigColorTable       = longSig | 102
	SigTransparentTable = longSig | 103
	SigPatternTable     = longSig | 152
	SigImageSegment     = longSig | 124
	SigImageHeader      = longSig | 125
	SigTiff             = longSig | 148
	SigGraphic          = longSig | 153
	SigPMMetaSeg        = longSig | 154
	SigWinMetaSeg       = longSig | 155
	SigMacMetaSeg       = longSig | 156
	SigCGMMeta          = longSig | 157
	SigPMMetaHeader     = longSig | 158
	SigWinMetaHeader    = longSig | 159
	SigMacMetaHeader    = longSig | 160
	SigBlobPart         = wordSig | 220
	SigCaption          = wordSig | 235
	SigImageText        = wordSig | 19
	SigImageHeader2     = longSig | 104
	SigResource         = wordSig | 54

	// ── Hotspots, links and actions ─────────────────────────────────────────
	SigHotspotBegin       = wordSig | 169
	SigHotspotEnd         = byteSig | 170
	SigButton             = wordSig | 171
	SigBar                = wordSig | 172
	SigV4HotspotBegin     = wordSig | 173
	SigV4HotspotEnd       = byteSig | 174
	SigExtField           = wordSig | 176
	SigLSObject           = wordSig | 177
	SigActionBar          = byteSig | 189
	SigAction             = wordSig | 190
	SigDocAutoLaunch      = wordSig | 191
	SigHRef               = wordSig | 246
	SigEvent              = wordSig | 249
	SigTimerInfo          = byteSig | 225
	SigTransition         = wordSig | 232
	SigFieldHint          = wordSig | 233
	SigPlaceholder        = wordSig | 234
	SigExt2Field          = wordSig | 254
	SigActionExt          = wordSig | 10
	SigEventLangEntry     = wordSig | 11
	SigActionBarExt       = wordSig | 20
	SigHotspotLink        = wordSig | 21
	SigHRef2              = wordSig | 34
	SigV6HotspotBeginCont = wordSig | 37
	SigTargetDblClk       = wordSig | 38
	SigV5HotspotBegin     = wordSig | 47
	SigV5HotspotEnd       = byteSig | 48
	SigV6HotspotBegin     = wordSig | 49
	SigV6HotspotEnd       = byteSig | 50
	SigLSObjectR6         = wordSig | 57

	// ── Layout regions ──────────────────────────────────────────────────────
	SigLayout        = byteSig | 183
	SigLayoutText    = byteSig | 184
	SigLayoutEnd     = byteSig | 185
	SigLayoutField   = byteSig | 186
	SigLayoutGraphic = byteSig | 192
	SigLayoutButton  = byteSig | 194
	SigRegionBegin   = wordSig | 230
	SigRegionEnd     = wordSig | 231

	// ── OLE, DDE and embedded objects ───────────────────────────────────────
	SigDDEBegin             = wordSig | 161
	SigDDEEnd               = wordSig | 162
	SigOLEBegin             = wordSig | 167
	SigOLEEnd               = wordSig | 168
	SigOLEObjInfo           = wordSig | 193
	SigStorageLink          = wordSig | 196
	SigOLERTMarker          = wordSig | 197
	SigEmbeddedOutline      = wordSig | 236
	SigEmbeddedView         = wordSig | 237
	SigEmbeddedCtl          = wordSig | 247
	SigEmbeddedSchedCtl     = wordSig | 253
	SigEmbeddedEditCtl      = wordSig | 255
	SigEmbeddedContactList  = wordSig | 4
	SigEmbeddedCalCtl       = wordSig | 12
	SigEmbeddedSchedCtlExt  = wordSig | 13
	SigEmbeddedEditorExtra  = wordSig | 22
	SigEmbeddedFileView     = wordSig | 23
	SigEmbeddedNavigator    = wordSig | 24
	SigEmbeddedFolderPane   = wordSig | 25
	SigEmbeddedDateSelector = wordSig | 26
	SigOLEObjPH             = wordSig | 243

	// ── HTML ────────────────────────────────────────────────────────────────
	SigHTMLHeader  = wordSig | 178
	SigHTMLSegment = wordSig | 179
	SigHTMLBegin   = wordSig | 204
	SigHTMLEnd     = wordSig | 205
	SigHTMLFormula = wordSig | 206
	SigHTMLAltText = wordSig | 248

	// ── Frames and image maps ───────────────────────────────────────────────
	SigFramesetHeader = wordSig | 239
	SigFrameset       = wordSig | 240
	SigFrame          = wordSig | 241
	SigTarget         = wordSig | 242
	SigMapElement     = wordSig | 244
	SigAreaElement    = wordSig | 245
)

// Signatures of the action namespace (KindAction).
const (
	SigActionHeader           = byteSig | 129
	SigActionModifyField      = wordSig | 130
	SigActionReply            = wordSig | 131
	SigActionFormula          = wordSig | 132
	SigActionLotusScript      = wordSig | 133
	SigActionSendMail         = wordSig | 134
	SigActionDBCopy           = wordSig | 135
	SigActionDelete           = byteSig | 136
	SigActionByForm           = wordSig | 137
	SigActionMarkRead         = byteSig | 138
	SigActionMarkUnread       = byteSig | 139
	SigActionMoveToFolder     = wordSig | 140
	SigActionCopyToFolder     = wordSig | 141
	SigActionRemoveFromFolder = wordSig | 142
	SigActionNewsletter       = wordSig | 143
	SigActionRunAgent         = wordSig | 144
	SigActionSendDocument     = byteSig | 145
	SigActionFormulaOnly      = wordSig | 146
	SigActionJavaAgent        = wordSig | 147
	SigActionJava             = wordSig | 148
)

// Signatures of the query namespace (KindQuery).
const (
	SigQueryHeader    = byteSig | 129
	SigQueryTextTerm  = wordSig | 130
	SigQueryByField   = wordSig | 131
	SigQueryByDate    = wordSig | 132
	SigQueryByAuthor  = wordSig | 133
	SigQueryFormula   = wordSig | 134
	SigQueryByForm    = wordSig | 135
	SigQueryByFolder  = wordSig | 136
	SigQueryUsesForm  = wordSig | 137
	SigQueryTopic     = wordSig | 138
	SigQueryFormulaV2 = wordSig | 139
)

// Signatures of the viewmap (navigator) layout namespace (KindViewmapLayout).
const (
	SigVMHeader        = byteSig | 175
	SigVMBitmap        = byteSig | 176
	SigVMRect          = byteSig | 177
	SigVMPolygonByte   = byteSig | 178
	SigVMPolylineByte  = byteSig | 179
	SigVMRegion        = byteSig | 180
	SigVMAction        = byteSig | 181
	SigVMEllipse       = byteSig | 182
	SigVMSmallTextbox  = byteSig | 183
	SigVMRoundRect     = byteSig | 184
	SigVMButton        = byteSig | 185
	SigVMAction2       = wordSig | 186
	SigVMTextbox       = wordSig | 187
	SigVMPolygon       = wordSig | 188
	SigVMPolyline      = wordSig | 189
	SigVMPolyRegion    = wordSig | 190
	SigVMCircle        = byteSig | 191
	SigVMPolyRgnByte   = byteSig | 192
	SigVMDatasetHeader = wordSig | 193
)
