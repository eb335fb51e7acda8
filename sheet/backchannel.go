// Package sheet serializes candidate tables to CSV for manual review and
// reads the adjudicated sheets back. Column order is fixed so that two runs
// over the same corpus produce byte-identical tables.
package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/kresnik/sogovor/annotate"
	"github.com/kresnik/sogovor/corpus"
	"github.com/kresnik/sogovor/extract"
)

// BackchannelHeader is the stable column order of the backchannel
// candidate table. The trailing decision columns start out empty and are
// filled by the reviewer.
var BackchannelHeader = []string{
	"doc", "confidence", "confidence_score",
	"A_sent_id", "A_speaker", "A_text", "A_sound_url",
	"B_sent_id", "B_speaker", "B_text", "B_sound_url",
	"B_tokens", "B_token_count", "backchannel_type", "why_candidate",
	"A_looks_like_backchannel", "B_has_content", "B_is_question",
	"B_after_question", "B_minor_filler", "B_has_verbal_bc",
	"B_has_discourse_rel",
	"proposed_attach_root", "proposed_attach_last_content",
	"keep?", "notes",
}

// WriteBackchannels writes the candidate table to w.
func WriteBackchannels(w io.Writer, cands []extract.BackchannelCandidate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(BackchannelHeader); err != nil {
		return err
	}
	for _, c := range cands {
		row := []string{
			c.Doc, string(c.Confidence), strconv.Itoa(c.Score),
			c.A.ID, c.A.Speaker, c.A.Text, c.A.SoundURL,
			c.B.ID, c.B.Speaker, c.B.Text, c.B.SoundURL,
			joinForms(c.B), strconv.Itoa(c.BTokenCount), c.Type,
			strings.Join(c.Reasons, "; "),
			flag(c.ALooksLikeBackchannel), flag(c.BHasContent), flag(c.BIsQuestion),
			flag(c.AfterQuestion), flag(c.MinorFiller), flag(c.HasVerbalBackchannel),
			flag(c.HasDiscourseRelation),
			formatAttachment(c.ProposedRoot), formatAttachment(c.ProposedLastContent),
			"", "",
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadBackchannelDecisions reads an adjudicated backchannel sheet. Every
// row becomes a decision; acceptance comes from the keep? column.
func ReadBackchannelDecisions(r io.Reader) ([]annotate.BackchannelDecision, error) {
	rows, header, err := readAll(r)
	if err != nil {
		return nil, err
	}
	for _, col := range []string{"doc", "A_sent_id", "B_sent_id", "keep?"} {
		if _, ok := header[col]; !ok {
			return nil, fmt.Errorf("decision sheet: missing required column %q", col)
		}
	}

	var ds []annotate.BackchannelDecision
	for _, row := range rows {
		d := annotate.BackchannelDecision{
			Doc:     cell(row, header, "doc"),
			ASentID: cell(row, header, "A_sent_id"),
			BSentID: cell(row, header, "B_sent_id"),
			Accept:  annotate.IsYes(cell(row, header, "keep?")),
			Note:    cell(row, header, "notes"),
		}
		if d.ASentID == "" || d.BSentID == "" {
			continue
		}
		ds = append(ds, d)
	}
	return ds, nil
}

func joinForms(u corpus.Utterance) string {
	var forms []string
	for _, t := range u.ContentTokens() {
		forms = append(forms, t.Form)
	}
	return strings.Join(forms, " ")
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func formatAttachment(a extract.Attachment) string {
	if a.IsZero() {
		return ""
	}
	return fmt.Sprintf("%s::%d", a.UtteranceID, a.TokenID)
}

// readAll loads a CSV with a header row and returns the data rows plus a
// column index.
func readAll(r io.Reader) ([][]string, map[string]int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	records, err := cr.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("decision sheet: empty file")
	}
	header := map[string]int{}
	for i, name := range records[0] {
		header[strings.TrimSpace(name)] = i
	}
	return records[1:], header, nil
}

func cell(row []string, header map[string]int, col string) string {
	i, ok := header[col]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
