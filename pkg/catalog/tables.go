package catalog

import "github.com/ssargent/cdstream/pkg/cd"

type row struct {
	sig   cd.Signature
	name  string
	fixed int
}

var compositeRows = []row{
	// ── Paragraph and text formatting ────────────────────────────────────────
	{cd.SigParagraph, "CDPARAGRAPH", 0},
	{cd.SigPabDefinition, "CDPABDEFINITION", 44},
	{cd.SigPabReference, "CDPABREFERENCE", 2},
	{cd.SigFieldPre36, "CDFIELD_PRE_36", 40},
	{cd.SigText, "CDTEXT", 4},
	{cd.SigDocument, "CDDOCUMENT", 22},
	{cd.SigMetafile, "CDMETAFILE", 8},
	{cd.SigBitmap, "CDBITMAP", 16},
	{cd.SigField, "CDFIELD", 32},
	{cd.SigFontTable, "CDFONTTABLE", 2},
	{cd.SigLink, "CDLINK", 8},
	{cd.SigLinkExport, "CDLINKEXPORT", 40},
	{cd.SigHeader, "CDHEADER", 6},
	{cd.SigKeyword, "CDKEYWORD", 10},
	{cd.SigLink2, "CDLINK2", 4},
	{cd.SigLinkExport2, "CDLINKEXPORT2", 42},
	{cd.SigCGM, "CDCGM", 6},
	{cd.SigStyleName, "CDSTYLENAME", 6},
	{cd.SigPabHide, "CDPABHIDE", 2},
	{cd.SigPabFormRef, "CDPABFORMREF", 2},
	{cd.SigTextEffect, "CDTEXTEFFECT", 4},
	{cd.SigHorizontalRule, "CDHRULE", 24},
	{cd.SigAltText, "CDALTTEXT", 8},
	{cd.SigAnchor, "CDANCHOR", 4},
	{cd.SigColor, "CDCOLOR", 6},
	{cd.SigVerticalAlign, "CDVERTICALALIGN", 2},
	{cd.SigFloatPosition, "CDFLOATPOSITION", 4},
	{cd.SigBidiText, "CDBIDI_TEXT", 8},
	{cd.SigBidiTextEffect, "CDBIDI_TEXTEFFECT", 8},
	{cd.SigLargeParagraph, "CDLARGEPARAGRAPH", 6},
	{cd.SigIgnore, "CDIGNORE", 4},
	{cd.SigDataFlags, "CDDATAFLAGS", 4},
	{cd.SigBackgroundProps, "CDBACKGROUNDPROPERTIES", 8},
	{cd.SigTextProperty, "CDTEXTPROPERTY", 4},
	{cd.SigSpanRecord, "CDSPANRECORD", 8},
	{cd.SigBoxSize, "CDBOXSIZE", 28},
	{cd.SigPositioning, "CDPOSITIONING", 30},
	{cd.SigLayer, "CDLAYER", 8},
	{cd.SigSpanEnd, "CDSPAN_END", 4},
	{cd.SigSpanBegin, "CDSPAN_BEGIN", 4},
	{cd.SigTextPropertiesTable, "CDTEXTPROPERTIESTABLE", 8},
	{cd.SigBackgroundColor, "CDBACKGROUNDCOLOR", 6},
	{cd.SigInline, "CDINLINE", 12},
	{cd.SigLinkColors, "CDLINKCOLORS", 20},
	{cd.SigID, "CDID", 8},
	{cd.SigIDName, "CDIDNAME", 8},
	{cd.SigAlternateBegin, "CDALTERNATEBEGIN", 8},
	{cd.SigAlternateEnd, "CDALTERNATEEND", 4},
	{cd.SigColumns, "CDCOLUMNS", 12},
	{cd.SigDECSField, "CDDECSFIELD", 16},

	// ── Tables ──────────────────────────────────────────────────────────────
	{cd.SigTableBegin, "CDTABLEBEGIN", 12},
	{cd.SigTableCell, "CDTABLECELL", 20},
	{cd.SigTableEnd, "CDTABLEEND", 4},
	{cd.SigNestedTableBegin, "CDNESTEDTABLEBEGIN", 12},
	{cd.SigNestedTableCell, "CDNESTEDTABLECELL", 20},
	{cd.SigNestedTableEnd, "CDNESTEDTABLEEND", 4},
	{cd.SigTableCellColor, "CDTABLECELL_COLOR", 10},
	{cd.SigTableRowHeight, "CDTABLEROWHEIGHT", 2},
	{cd.SigTableLabel, "CDTABLELABEL", 136},
	{cd.SigCellBackgroundData, "CDCELLBACKGROUNDDATA", 8},
	{cd.SigPreTableBegin, "CDPRETABLEBEGIN", 12},
	{cd.SigBorderInfo, "CDBORDERINFO", 32},
	{cd.SigTableCellHref2, "CDTABLECELL_HREF2", 8},
	{cd.SigHrefBorder, "CDHREFBORDER", 16},
	{cd.SigTableDataExtension, "CDTABLEDATAEXTENSION", 16},
	{cd.SigTableRowData, "CDTABLEROWDATA", 8},
	{cd.SigTableCellHref, "CDTABLECELL_HREF", 4},
	{cd.SigTableCellIDName, "CDTABLECELL_IDNAME", 8},

	// ── Block delimiters ────────────────────────────────────────────────────
	{cd.SigBegin, "CDBEGINRECORD", 4},
	{cd.SigEnd, "CDENDRECORD", 4},

	// ── Graphics and resources ──────────────────────────────────────────────
	{cd.SigFileSegment, "CDFILESEGMENT", 12},
	{cd.SigFileHeader, "CDFILEHEADER", 18},
	{cd.SigBitmapHeader, "CDBITMAPHEADER", 24},
	{cd.SigBitmapSegment, "CDBITMAPSEGMENT", 8},
	{cd.SigColorTable, "CDCOLORTABLE", 0},
	{cd.SigTransparentTable, "CDTRANSPARENTTABLE", 2},
	{cd.SigPatternTable, "CDPATTERNTABLE", 0},
	{cd.SigImageSegment, "CDIMAGESEGMENT", 4},
	{cd.SigImageHeader, "CDIMAGEHEADER", 22},
	{cd.SigTiff, "CDTIFF", 8},
	{cd.SigGraphic, "CDGRAPHIC", 22},
	{cd.SigPMMetaSeg, "CDPMMETASEG", 4},
	{cd.SigWinMetaSeg, "CDWINMETASEG", 4},
	{cd.SigMacMetaSeg, "CDMACMETASEG", 4},
	{cd.SigCGMMeta, "CDCGMMETA", 8},
	{cd.SigPMMetaHeader, "CDPMMETAHEADER", 20},
	{cd.SigWinMetaHeader, "CDWINMETAHEADER", 20},
	{cd.SigMacMetaHeader, "CDMACMETAHEADER", 20},
	{cd.SigBlobPart, "CDBLOBPART", 14},
	{cd.SigCaption, "CDCAPTION", 24},
	{cd.SigImageText, "CDIMAGETEXT", 8},
	{cd.SigImageHeader2, "CDIMAGEHEADER2", 26},
	{cd.SigResource, "CDRESOURCE", 24},

	// ── Hotspots, links and actions ─────────────────────────────────────────
	{cd.SigHotspotBegin, "CDHOTSPOTBEGIN", 8},
	{cd.SigHotspotEnd, "CDHOTSPOTEND", 0},
	{cd.SigButton, "CDBUTTON", 16},
	{cd.SigBar, "CDBAR", 8},
	{cd.SigV4HotspotBegin, "CDV4HOTSPOTBEGIN", 8},
	{cd.SigV4HotspotEnd, "CDV4HOTSPOTEND", 0},
	{cd.SigExtField, "CDEXTFIELD", 40},
	{cd.SigLSObject, "CDLSOBJECT", 8},
	{cd.SigActionBar, "CDACTIONBAR", 24},
	{cd.SigAction, "CDACTION", 16},
	{cd.SigDocAutoLaunch, "CDDOCAUTOLAUNCH", 40},
	{cd.SigHRef, "CDHREF", 8},
	{cd.SigEvent, "CDEVENT", 26},
	{cd.SigTimerInfo, "CDTIMERINFO", 8},
	{cd.SigTransition, "CDTRANSITION", 8},
	{cd.SigFieldHint, "CDFIELDHINT", 12},
	{cd.SigPlaceholder, "CDPLACEHOLDER", 24},
	{cd.SigExt2Field, "CDEXT2FIELD", 80},
	{cd.SigActionExt, "CDACTIONEXT", 12},
	{cd.SigEventLangEntry, "CDEVENTENTRY", 8},
	{cd.SigActionBarExt, "CDACTIONBAREXT", 24},
	{cd.SigHotspotLink, "CDHOTSPOTLINK", 8},
	{cd.SigHRef2, "CDHREF2", 4},
	{cd.SigV6HotspotBeginCont, "CDV6HOTSPOTBEGIN_CONTINUATION", 8},
	{cd.SigTargetDblClk, "CDTARGET_DBLCLK", 8},
	{cd.SigV5HotspotBegin, "CDV5HOTSPOTBEGIN", 8},
	{cd.SigV5HotspotEnd, "CDV5HOTSPOTEND", 0},
	{cd.SigV6HotspotBegin, "CDV6HOTSPOTBEGIN", 8},
	{cd.SigV6HotspotEnd, "CDV6HOTSPOTEND", 0},
	{cd.SigLSObjectR6, "CDLSOBJECT_R6", 8},

	// ── Layout regions ──────────────────────────────────────────────────────
	{cd.SigLayout, "CDLAYOUT", 24},
	{cd.SigLayoutText, "CDLAYOUTTEXT", 32},
	{cd.SigLayoutEnd, "CDLAYOUTEND", 0},
	{cd.SigLayoutField, "CDLAYOUTFIELD", 32},
	{cd.SigLayoutGraphic, "CDLAYOUTGRAPHIC", 16},
	{cd.SigLayoutButton, "CDLAYOUTBUTTON", 16},
	{cd.SigRegionBegin, "CDREGIONBEGIN", 36},
	{cd.SigRegionEnd, "CDREGIONEND", 36},

	// ── OLE, DDE and embedded objects ───────────────────────────────────────
	{cd.SigDDEBegin, "CDDDEBEGIN", 12},
	{cd.SigDDEEnd, "CDDDEEND", 4},
	{cd.SigOLEBegin, "CDOLEBEGIN", 10},
	{cd.SigOLEEnd, "CDOLEEND", 4},
	{cd.SigOLEObjInfo, "CDOLEOBJ_INFO", 24},
	{cd.SigStorageLink, "CDSTORAGELINK", 8},
	{cd.SigOLERTMarker, "CDOLERTMARKER", 12},
	{cd.SigEmbeddedOutline, "CDEMBEDDEDOUTLINE", 60},
	{cd.SigEmbeddedView, "CDEMBEDDEDVIEW", 40},
	{cd.SigEmbeddedCtl, "CDEMBEDDEDCTL", 40},
	{cd.SigEmbeddedSchedCtl, "CDEMBEDDEDSCHEDCTL", 48},
	{cd.SigEmbeddedEditCtl, "CDEMBEDDEDEDITCTL", 40},
	{cd.SigEmbeddedContactList, "CDEMBEDDEDCONTACTLIST", 40},
	{cd.SigEmbeddedCalCtl, "CDEMBEDDEDCALCTL", 40},
	{cd.SigEmbeddedSchedCtlExt, "CDEMBEDDEDSCHEDCTLEXTRA", 48},
	{cd.SigEmbeddedEditorExtra, "CDEMBEDDEDEDITOREXTRA", 16},
	{cd.SigEmbeddedFileView, "CDEMBEDDEDFILEVIEW", 24},
	{cd.SigEmbeddedNavigator, "CDEMBEDDEDNAVIGATOR", 24},
	{cd.SigEmbeddedFolderPane, "CDEMBEDDEDFOLDERPANE", 24},
	{cd.SigEmbeddedDateSelector, "CDEMBEDDEDDATESELECTOR", 24},
	{cd.SigOLEObjPH, "CDOLEOBJ_PH", 8},

	// ── HTML ────────────────────────────────────────────────────────────────
	{cd.SigHTMLHeader, "CDHTMLHEADER", 8},
	{cd.SigHTMLSegment, "CDHTMLSEGMENT", 4},
	{cd.SigHTMLBegin, "CDHTMLBEGIN", 8},
	{cd.SigHTMLEnd, "CDHTMLEND", 4},
	{cd.SigHTMLFormula, "CDHTMLFORMULA", 6},
	{cd.SigHTMLAltText, "CDHTML_ALTTEXT", 4},

	// ── Frames and image maps ───────────────────────────────────────────────
	{cd.SigFramesetHeader, "CDFRAMESETHEADER", 8},
	{cd.SigFrameset, "CDFRAMESET", 12},
	{cd.SigFrame, "CDFRAME", 28},
	{cd.SigTarget, "CDTARGET", 8},
	{cd.SigMapElement, "CDMAPELEMENT", 16},
	{cd.SigAreaElement, "CDAREAELEMENT", 16},
}

var actionRows = []row{
	{cd.SigActionHeader, "ACTION_HEADER", 2},
	{cd.SigActionModifyField, "ACTION_MODIFYFIELD", 8},
	{cd.SigActionReply, "ACTION_REPLY", 6},
	{cd.SigActionFormula, "ACTION_FORMULA", 6},
	{cd.SigActionLotusScript, "ACTION_LOTUSSCRIPT", 6},
	{cd.SigActionSendMail, "ACTION_SENDMAIL", 12},
	{cd.SigActionDBCopy, "ACTION_DBCOPY", 12},
	{cd.SigActionDelete, "ACTION_DELETE", 4},
	{cd.SigActionByForm, "ACTION_BYFORM", 12},
	{cd.SigActionMarkRead, "ACTION_READ", 4},
	{cd.SigActionMarkUnread, "ACTION_UNREAD", 4},
	{cd.SigActionMoveToFolder, "ACTION_MOVETOFOLDER", 6},
	{cd.SigActionCopyToFolder, "ACTION_COPYTOFOLDER", 6},
	{cd.SigActionRemoveFromFolder, "ACTION_REMOVEFROMFOLDER", 6},
	{cd.SigActionNewsletter, "ACTION_NEWSLETTER", 12},
	{cd.SigActionRunAgent, "ACTION_RUNAGENT", 6},
	{cd.SigActionSendDocument, "ACTION_SENDDOCUMENT", 4},
	{cd.SigActionFormulaOnly, "ACTION_FORMULAONLY", 6},
	{cd.SigActionJavaAgent, "ACTION_JAVAAGENT", 12},
	{cd.SigActionJava, "ACTION_JAVA", 12},
}

var queryRows = []row{
	{cd.SigQueryHeader, "QUERY_HEADER", 8},
	{cd.SigQueryTextTerm, "QUERY_TEXTTERM", 8},
	{cd.SigQueryByField, "QUERY_BYFIELD", 24},
	{cd.SigQueryByDate, "QUERY_BYDATE", 24},
	{cd.SigQueryByAuthor, "QUERY_BYAUTHOR", 8},
	{cd.SigQueryFormula, "QUERY_FORMULA", 6},
	{cd.SigQueryByForm, "QUERY_BYFORM", 8},
	{cd.SigQueryByFolder, "QUERY_BYFOLDER", 8},
	{cd.SigQueryUsesForm, "QUERY_USESFORM", 8},
	{cd.SigQueryTopic, "QUERY_TOPIC", 8},
	{cd.SigQueryFormulaV2, "QUERY_FORMULA_V2", 6},
}

var viewmapRows = []row{
	{cd.SigVMHeader, "VMHEADER", 20},
	{cd.SigVMBitmap, "VMBITMAP", 24},
	{cd.SigVMRect, "VMRECT", 32},
	{cd.SigVMPolygonByte, "VMPOLYGON_BYTE", 32},
	{cd.SigVMPolylineByte, "VMPOLYLINE_BYTE", 32},
	{cd.SigVMRegion, "VMREGION", 32},
	{cd.SigVMAction, "VMACTION", 40},
	{cd.SigVMEllipse, "VMELLIPSE", 32},
	{cd.SigVMSmallTextbox, "VMSMALLTEXTBOX", 40},
	{cd.SigVMRoundRect, "VMRNDRECT", 32},
	{cd.SigVMButton, "VMBUTTON", 40},
	{cd.SigVMAction2, "VMACTION_2", 40},
	{cd.SigVMTextbox, "VMTEXTBOX", 48},
	{cd.SigVMPolygon, "VMPOLYGON", 32},
	{cd.SigVMPolyline, "VMPOLYLINE", 32},
	{cd.SigVMPolyRegion, "VMPOLYRGN", 32},
	{cd.SigVMCircle, "VMCIRCLE", 32},
	{cd.SigVMPolyRgnByte, "VMPOLYRGN_BYTE", 32},
	{cd.SigVMDatasetHeader, "VMDATASET", 16},
}

// typed lists the composite signatures decoded into dedicated Go types.
var typed = map[cd.Signature]func() cd.Record{
	cd.SigParagraph:     func() cd.Record { return new(cd.Paragraph) },
	cd.SigPabReference:  func() cd.Record { return new(cd.PabReference) },
	cd.SigText:          func() cd.Record { return new(cd.Text) },
	cd.SigTableBegin:    func() cd.Record { return new(cd.TableBegin) },
	cd.SigTableCell:     func() cd.Record { return new(cd.TableCell) },
	cd.SigTableEnd:      func() cd.Record { return new(cd.TableEnd) },
	cd.SigPreTableBegin: func() cd.Record { return new(cd.PreTableBegin) },
	cd.SigBegin:         func() cd.Record { return new(cd.BeginRecord) },
	cd.SigEnd:           func() cd.Record { return new(cd.EndRecord) },
	cd.SigFileHeader:    func() cd.Record { return new(cd.FileHeader) },
	cd.SigFileSegment:   func() cd.Record { return new(cd.FileSegment) },
	cd.SigImageHeader:   func() cd.Record { return new(cd.ImageHeader) },
	cd.SigImageSegment:  func() cd.Record { return new(cd.ImageSegment) },
	cd.SigEvent:         func() cd.Record { return new(cd.Event) },
	cd.SigBlobPart:      func() cd.Record { return new(cd.BlobPart) },
	cd.SigGraphic:       func() cd.Record { return new(cd.Graphic) },
	cd.SigCaption:       func() cd.Record { return new(cd.Caption) },
	cd.SigHotspotBegin:  func() cd.Record { return new(cd.HotspotBegin) },
	cd.SigHotspotEnd:    func() cd.Record { return new(cd.HotspotEnd) },
}
