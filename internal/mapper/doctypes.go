package mapper

import "github.com/RAP-research-output-impact/rap-etl/internal/rdf"

// docTypeTable maps WoS document types to publication type tags.
// See http://images.webofknowledge.com/WOKRS59B4/help/WOS/hs_document_type.html
var docTypeTable = map[string]rdf.IRI{
	"Article":                               rdf.IRI(rdf.WOSNS + "Article"),
	"Abstract of Published Item":            rdf.IRI(rdf.WOSNS + "Abstract"),
	"Art Exhibit Review":                    rdf.IRI(rdf.WOSNS + "ArtExhibitReview"),
	"Biographical-Item":                     rdf.IRI(rdf.WOSNS + "BiographicalItem"),
	"Book":                                  rdf.BIBOBook,
	"Book Chapter":                          rdf.IRI(rdf.WOSNS + "BookChapter"),
	"Book Review":                           rdf.IRI(rdf.WOSNS + "BookReview"),
	"Chronology":                            rdf.IRI(rdf.WOSNS + "Chronology"),
	"Correction":                            rdf.IRI(rdf.WOSNS + "Correction"),
	"Correction, Addition":                  rdf.IRI(rdf.WOSNS + "CorrectionEdition"),
	"Dance Performance Review":              rdf.IRI(rdf.WOSNS + "DancePerformanceReview"),
	"Database Review":                       rdf.IRI(rdf.WOSNS + "DatabaseReview"),
	"Discussion":                            rdf.IRI(rdf.WOSNS + "Discussion"),
	"Editorial Material":                    rdf.IRI(rdf.WOSNS + "EditorialMaterial"),
	"Excerpt":                               rdf.IRI(rdf.WOSNS + "Excerpt"),
	"Fiction, Creative Prose":               rdf.IRI(rdf.WOSNS + "FictionCreativeProse"),
	"Film Review":                           rdf.IRI(rdf.WOSNS + "FilmReview"),
	"Hardware Review":                       rdf.IRI(rdf.WOSNS + "HardwareReview"),
	"Item About An Individual":              rdf.IRI(rdf.WOSNS + "ItemAboutAnIndividual"),
	"Letter":                                rdf.IRI(rdf.WOSNS + "Letter"),
	"Meeting Abstract":                      rdf.IRI(rdf.WOSNS + "MeetingAbstract"),
	"Meeting Summary":                       rdf.IRI(rdf.WOSNS + "MeetingSummary"),
	"Music Performance Review":              rdf.IRI(rdf.WOSNS + "MusicPerformanceReview"),
	"Music Score":                           rdf.IRI(rdf.WOSNS + "MusicScore"),
	"Music Score Review":                    rdf.IRI(rdf.WOSNS + "MusicScoreReview"),
	"News Item":                             rdf.IRI(rdf.WOSNS + "NewsItem"),
	"Note":                                  rdf.IRI(rdf.WOSNS + "Note"),
	"Poetry":                                rdf.IRI(rdf.WOSNS + "Poetry"),
	"Proceedings Paper":                     rdf.IRI(rdf.WOSNS + "ProceedingsPaper"),
	"Record Review":                         rdf.IRI(rdf.WOSNS + "RecordReview"),
	"Reprint":                               rdf.IRI(rdf.WOSNS + "Reprint"),
	"Review":                                rdf.IRI(rdf.WOSNS + "Review"),
	"Script":                                rdf.IRI(rdf.WOSNS + "Script"),
	"Software Review":                       rdf.IRI(rdf.WOSNS + "SoftwareReview"),
	"TV Review, Radio Review":               rdf.IRI(rdf.WOSNS + "TVRadioReview"),
	"TV Review, Radio Review, Video Review": rdf.IRI(rdf.WOSNS + "TVRadioVideoReview"),
	"Theater Review":                        rdf.IRI(rdf.WOSNS + "TheaterReview"),
}

// bookPubTypes are the publication-type values treated as books for
// venue classification.
var bookPubTypes = map[string]bool{
	"Book":            true,
	"Books":           true,
	"Book in series":  true,
	"Books in series": true,
}
