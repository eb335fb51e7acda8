package sheet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/kresnik/sogovor/annotate"
	"github.com/kresnik/sogovor/extract"
)

// CoconstructionHeader is the stable column order of the co-construction
// candidate table. The reviewer fills the last four columns.
var CoconstructionHeader = []string{
	"doc",
	"a_sent_id", "a_speaker", "a_text", "a_sound_url",
	"b_sent_id", "b_speaker", "b_text", "b_sound_url",
	"len", "b_root_upos", "b_root_form",
	"orphan_tail", "a_continues", "a_is_question",
	"b_first_token", "b_starts_backchannel_like", "b_has_question_mark",
	"b_root_is_intj_part",
	"is_coconstruction", "coconstruct_deprel", "governor_token_id", "notes",
}

// WriteCoconstructions writes the candidate table to w.
func WriteCoconstructions(w io.Writer, cands []extract.CoconstructionCandidate) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CoconstructionHeader); err != nil {
		return err
	}
	for _, c := range cands {
		row := []string{
			c.Doc,
			c.A.ID, c.A.Speaker, c.A.Text, c.A.SoundURL,
			c.B.ID, c.B.Speaker, c.B.Text, c.B.SoundURL,
			strconv.Itoa(c.BTokenCount), c.BRootUPos, c.BRootForm,
			flag(c.OrphanTail), flag(c.AContinues), flag(c.AIsQuestion),
			c.BFirstToken, flag(c.BStartsBackchannelLike), flag(c.BHasQuestionMark),
			flag(c.BRootIsIntjPart),
			"", "", "", "",
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCoconstructionDecisions reads an adjudicated co-construction sheet.
// Rows without a relation or governor are skipped (not yet reviewed); an
// explicit negative in is_coconstruction yields a rejected decision.
func ReadCoconstructionDecisions(r io.Reader) ([]annotate.CoconstructionDecision, error) {
	rows, header, err := readAll(r)
	if err != nil {
		return nil, err
	}
	for _, col := range []string{"a_sent_id", "b_sent_id", "coconstruct_deprel", "governor_token_id"} {
		if _, ok := header[col]; !ok {
			return nil, fmt.Errorf("decision sheet: missing required column %q", col)
		}
	}

	var ds []annotate.CoconstructionDecision
	for i, row := range rows {
		d := annotate.CoconstructionDecision{
			Doc:     cell(row, header, "doc"),
			ASentID: cell(row, header, "a_sent_id"),
			BSentID: cell(row, header, "b_sent_id"),
			Deprel:  cell(row, header, "coconstruct_deprel"),
			Note:    cell(row, header, "notes"),
		}

		verdict := cell(row, header, "is_coconstruction")
		d.Accept = verdict == "" || annotate.IsYes(verdict)

		gov := cell(row, header, "governor_token_id")
		if d.ASentID == "" || d.BSentID == "" || d.Deprel == "" || gov == "" {
			continue
		}

		// spreadsheet exports render integers as "12.0"
		f, err := strconv.ParseFloat(gov, 64)
		if err != nil {
			return nil, fmt.Errorf("decision sheet row %d: invalid governor_token_id %q", i+2, gov)
		}
		d.GovernorTokenID = int(f)

		ds = append(ds, d)
	}
	return ds, nil
}
