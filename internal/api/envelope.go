package api

import "encoding/json"

// A API ora devolve o recurso direto, ora embrulhado em {"data": ...}.
// Normalizamos aqui, uma única vez, em vez de espalhar a checagem por
// cada chamada.
//
// Atenção: agendamento tem um campo "data" que é a DATA (YYYY-MM-DD), não
// envelope. Se o conteúdo de "data" não encaixar no destino, tratamos a
// resposta como recurso direto.
func decodeEnvelope(raw []byte, out any) error {
	var env struct {
		Data json.RawMessage `json:"data"`
	}

	if err := json.Unmarshal(raw, &env); err == nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err == nil {
			return nil
		}
	}

	return json.Unmarshal(raw, out)
}
