package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/agenda-client/internal/api"
	"github.com/BruksfildServices01/agenda-client/internal/cep"
	"github.com/BruksfildServices01/agenda-client/internal/config"
	domain "github.com/BruksfildServices01/agenda-client/internal/domain/appointment"
	"github.com/BruksfildServices01/agenda-client/internal/models"
	"github.com/BruksfildServices01/agenda-client/internal/session"
	"github.com/BruksfildServices01/agenda-client/internal/usecase/booking"
)

const usage = `agendacli <comando> [flags]

Comandos:
  login          -email -senha
  register       -nome -email -senha
  logout
  categorias
  estabelecimentos -categoria [-lat -long]
  servicos       -estabelecimento [-lat -long]
  horarios       -estabelecimento -servico -data [-colaborador]
  agendar        -estabelecimento -servico -data -horario [-colaborador]
  confirmar      -id
  agendamentos
  cancelar       -id
  user
  enderecos
  endereco-add   -nome -cep -numero [-complemento]
  endereco-del   -id
  cep            -cep
  raio           -km
  aviso          -tipo 24h|2h -on=true|false
  perfil         -nome [-avatar caminho]
`

type app struct {
	cfg *config.Config
	log zerolog.Logger

	store *session.FileStore
	api   *api.Client
	cep   *cep.Client
}

func main() {
	verbose := false
	args := os.Args[1:]
	if len(args) > 0 && args[0] == "-v" {
		verbose = true
		args = args[1:]
	}
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg := config.Load()

	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	store := session.NewFileStore(cfg.SessionFile)

	a := &app{
		cfg:   cfg,
		log:   logger,
		store: store,
		api:   api.New(cfg.APIBaseURL, cfg.HTTPTimeout, store, logger),
		cep:   cep.New(cfg.CEPBaseURL, cfg.HTTPTimeout, logger),
	}

	if err := a.run(context.Background(), args[0], args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "erro:", err)
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, command string, args []string) error {
	switch command {
	case "login":
		return a.login(ctx, args)
	case "register":
		return a.register(ctx, args)
	case "logout":
		return a.api.Logout()
	case "categorias":
		return a.categories(ctx)
	case "estabelecimentos":
		return a.establishments(ctx, args)
	case "servicos":
		return a.services(ctx, args)
	case "horarios":
		return a.slots(ctx, args)
	case "agendar":
		return a.book(ctx, args)
	case "confirmar":
		return a.confirm(ctx, args)
	case "agendamentos":
		return a.schedule(ctx)
	case "cancelar":
		return a.cancel(ctx, args)
	case "user":
		return a.user(ctx)
	case "enderecos":
		return a.addresses(ctx)
	case "endereco-add":
		return a.addAddress(ctx, args)
	case "endereco-del":
		return a.deleteAddress(ctx, args)
	case "cep":
		return a.lookupCEP(ctx, args)
	case "raio":
		return a.searchRadius(ctx, args)
	case "aviso":
		return a.reminder(ctx, args)
	case "perfil":
		return a.editProfile(ctx, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("comando desconhecido: %s", command)
	}
}

// --------- Autenticação ---------

func (a *app) login(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	email := fs.String("email", "", "e-mail")
	senha := fs.String("senha", "", "senha")
	fs.Parse(args)

	if err := a.api.Login(ctx, api.LoginInput{Email: *email, Password: *senha}); err != nil {
		return err
	}
	fmt.Println("Login feito.")
	return nil
}

func (a *app) register(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("register", flag.ExitOnError)
	nome := fs.String("nome", "", "nome")
	email := fs.String("email", "", "e-mail")
	senha := fs.String("senha", "", "senha")
	fs.Parse(args)

	err := a.api.Register(ctx, api.RegisterInput{
		Nome:                 *nome,
		Email:                *email,
		Password:             *senha,
		PasswordConfirmation: *senha,
	})
	if err != nil {
		return err
	}
	fmt.Println("Cadastro feito.")
	return nil
}

// --------- Catálogo ---------

func (a *app) categories(ctx context.Context) error {
	categories, err := a.api.ListCategories(ctx)
	if err != nil {
		return err
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Nome < categories[j].Nome })
	for _, cat := range categories {
		fmt.Printf("%3d  %s\n", cat.ID, cat.Nome)
	}
	return nil
}

func coordsFlags(fs *flag.FlagSet) (lat, long *float64) {
	lat = fs.Float64("lat", 0, "latitude")
	long = fs.Float64("long", 0, "longitude")
	return
}

func coordsFrom(lat, long float64) *api.Coordinates {
	if lat == 0 && long == 0 {
		return nil
	}
	return &api.Coordinates{Latitude: lat, Longitude: long}
}

func (a *app) establishments(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("estabelecimentos", flag.ExitOnError)
	categoria := fs.Uint("categoria", 0, "id da categoria")
	lat, long := coordsFlags(fs)
	fs.Parse(args)

	establishments, err := a.api.ListEstablishments(ctx, uint(*categoria), coordsFrom(*lat, *long))
	if err != nil {
		return err
	}
	for _, est := range establishments {
		line := fmt.Sprintf("%3d  %s — %s", est.ID, est.Nome, models.Address{
			Logradouro: est.Logradouro, Numero: est.Numero,
			Bairro: est.Bairro, Cidade: est.Cidade, Estado: est.Estado,
		}.Label())
		if est.Distancia != nil {
			line += fmt.Sprintf(" (%.1f km)", *est.Distancia)
		}
		fmt.Println(line)
	}
	return nil
}

func (a *app) services(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("servicos", flag.ExitOnError)
	estID := fs.Uint("estabelecimento", 0, "id do estabelecimento")
	lat, long := coordsFlags(fs)
	fs.Parse(args)

	est, err := a.api.GetEstablishment(ctx, uint(*estID), coordsFrom(*lat, *long))
	if err != nil {
		return err
	}

	fmt.Println(est.Nome)
	for _, svc := range est.Servicos {
		fmt.Printf("%3d  %-24s %s  (%s)\n", svc.ID, svc.Nome, svc.Preco.Display(), svc.TempoMedioDuracao)
		for _, staff := range svc.ColaboradoresCapacitados {
			fmt.Printf("       • %d %s\n", staff.ID, staff.Nome)
		}
	}
	return nil
}

// --------- Agendamento ---------

func slotFlags(fs *flag.FlagSet) (est, svc, staff *uint, data *string) {
	est = fs.Uint("estabelecimento", 0, "id do estabelecimento")
	svc = fs.Uint("servico", 0, "id do serviço")
	staff = fs.Uint("colaborador", 0, "id do colaborador (0 = qualquer)")
	data = fs.String("data", "", "data YYYY-MM-DD")
	return
}

func (a *app) picker(est, svc, staff uint) *booking.SlotPicker {
	return booking.NewSlotPicker(a.api, api.SlotQuery{
		EstablishmentID: est,
		ServiceID:       svc,
		StaffID:         staff,
	}, a.log)
}

func (a *app) slots(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("horarios", flag.ExitOnError)
	est, svc, staff, data := slotFlags(fs)
	fs.Parse(args)

	picker := a.picker(uint(*est), uint(*svc), uint(*staff))
	picker.SelectDate(ctx, *data)

	groups := picker.Groups()
	if len(groups) == 0 {
		fmt.Println("Sem horários para", *data)
		return nil
	}
	for _, group := range groups {
		fmt.Printf("%s:", group.Part)
		for _, slot := range group.Slots {
			fmt.Printf(" %s", slot)
		}
		fmt.Println()
	}
	return nil
}

func (a *app) book(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("agendar", flag.ExitOnError)
	est, svc, staff, data := slotFlags(fs)
	horario := fs.String("horario", "", "horário HH:MM")
	fs.Parse(args)

	picker := a.picker(uint(*est), uint(*svc), uint(*staff))
	picker.SelectDate(ctx, *data)

	if err := picker.SelectTime(*horario); err != nil {
		return fmt.Errorf("horário %s não está disponível em %s", *horario, *data)
	}

	confirmation, err := picker.Lock(ctx)

	var conflict *booking.SlotConflictError
	if errors.As(err, &conflict) {
		fmt.Println(conflict.Message)
		if len(conflict.Slots) > 0 {
			fmt.Println("Horários ainda livres:", conflict.Slots)
		}
		return errors.New("horário tomado; escolha outro")
	}
	if err != nil {
		return err
	}

	fmt.Printf("Reservado (pendente): #%d %s %s–%s, %s em %s\n",
		confirmation.AgendamentoID, confirmation.Data,
		confirmation.Inicio, confirmation.Fim,
		confirmation.Servico.Nome, confirmation.Estabelecimento.Nome)
	if confirmation.Colaborador != nil {
		fmt.Println("Profissional:", confirmation.Colaborador.Nome)
	}
	fmt.Printf("Confirme em até 15 minutos: agendacli confirmar -id %d\n", confirmation.AgendamentoID)
	return nil
}

func (a *app) confirm(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("confirmar", flag.ExitOnError)
	id := fs.Uint("id", 0, "id do agendamento")
	fs.Parse(args)

	appointments, err := a.api.ListAppointments(ctx)
	if err != nil {
		return err
	}

	for _, ap := range appointments {
		if ap.ID == uint(*id) {
			uc := booking.NewConfirmAppointment(a.api)
			if err := uc.Execute(ctx, booking.ConfirmationFrom(ap)); err != nil {
				return err
			}
			fmt.Println("Agendamento confirmado.")
			return nil
		}
	}
	return fmt.Errorf("agendamento %d não encontrado", *id)
}

func (a *app) schedule(ctx context.Context) error {
	agenda, err := booking.NewListSchedule(a.api, a.log).Execute(ctx)
	if err != nil {
		return err
	}

	printSection("Próximos", agenda.Upcoming, true)
	printSection("Anteriores", agenda.Past, false)
	return nil
}

func printSection(title string, items []models.Appointment, withActions bool) {
	fmt.Printf("%s (%d)\n", title, len(items))
	for _, ap := range items {
		c := booking.ConfirmationFrom(ap)
		fmt.Printf("  #%d  %s %s  %s — %s  [%s]\n",
			ap.ID, c.Data, c.Inicio, ap.Servico.Nome, ap.Estabelecimento.Nome, statusLabel(ap.Status))
		if withActions {
			for _, action := range domain.ActionsFor(ap) {
				switch action {
				case domain.ActionDirections:
					fmt.Printf("       %s: %s\n", action, domain.DirectionsURL(ap.Estabelecimento))
				case domain.ActionMessage:
					fmt.Printf("       %s: %s\n", action, domain.MessageURL(ap.Colaborador))
				default:
					fmt.Printf("       %s\n", action)
				}
			}
		}
	}
}

func statusLabel(status int) string {
	switch domain.Status(status) {
	case domain.StatusPending:
		return "pendente"
	case domain.StatusConfirmed:
		return "confirmado"
	case domain.StatusCancelled:
		return "cancelado"
	case domain.StatusCompleted:
		return "concluído"
	}
	return "confirmado"
}

func (a *app) cancel(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cancelar", flag.ExitOnError)
	id := fs.Uint("id", 0, "id do agendamento")
	fs.Parse(args)

	appointments, err := a.api.ListAppointments(ctx)
	if err != nil {
		return err
	}

	for _, ap := range appointments {
		if ap.ID == uint(*id) {
			agenda, err := booking.NewCancelAppointment(a.api, a.log).Execute(ctx, ap)
			if err != nil {
				return err
			}
			fmt.Printf("Cancelado. Próximos agora: %d\n", len(agenda.Upcoming))
			return nil
		}
	}
	return fmt.Errorf("agendamento %d não encontrado", *id)
}

// --------- Perfil ---------

func (a *app) user(ctx context.Context) error {
	user, err := a.api.GetUser(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s <%s>\n", user.Name, user.Email)
	fmt.Printf("Raio de busca: %.0f km\n", user.RaioBusca)
	fmt.Printf("Aviso 24h: %v  Aviso 2h: %v\n", bool(user.Aviso24h), bool(user.Aviso2h))
	for _, addr := range user.Enderecos {
		fmt.Printf("  %d  %s — %s\n", addr.ID, addr.Nome, addr.Label())
	}
	return nil
}

func (a *app) addresses(ctx context.Context) error {
	addresses, err := a.api.ListAddresses(ctx)
	if err != nil {
		return err
	}
	for _, addr := range addresses {
		fmt.Printf("%3d  %s — %s\n", addr.ID, addr.Nome, addr.Label())
	}
	return nil
}

// addAddress resolve o CEP e grava o endereço completo, como o formulário
// do app faz.
func (a *app) addAddress(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("endereco-add", flag.ExitOnError)
	nome := fs.String("nome", "", "apelido do endereço (Casa, Trabalho)")
	rawCEP := fs.String("cep", "", "CEP")
	numero := fs.String("numero", "", "número")
	complemento := fs.String("complemento", "", "complemento")
	fs.Parse(args)

	result, err := a.cep.Lookup(ctx, *rawCEP)
	if err != nil {
		return err
	}

	saved, err := a.api.SaveAddress(ctx, 0, api.AddressInput{
		Nome:        *nome,
		CEP:         result.CEP,
		Logradouro:  result.Logradouro,
		Numero:      *numero,
		Complemento: *complemento,
		Bairro:      result.Bairro,
		Cidade:      result.Localidade,
		Estado:      result.UF,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Endereço %d salvo: %s\n", saved.ID, saved.Label())
	return nil
}

func (a *app) deleteAddress(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("endereco-del", flag.ExitOnError)
	id := fs.Uint("id", 0, "id do endereço")
	fs.Parse(args)

	if err := a.api.DeleteAddress(ctx, uint(*id)); err != nil {
		return err
	}
	fmt.Println("Endereço removido.")
	return nil
}

func (a *app) lookupCEP(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("cep", flag.ExitOnError)
	rawCEP := fs.String("cep", "", "CEP")
	fs.Parse(args)

	result, err := a.cep.Lookup(ctx, *rawCEP)
	if err != nil {
		return err
	}
	fmt.Printf("%s — %s, %s, %s/%s\n", result.CEP, result.Logradouro, result.Bairro, result.Localidade, result.UF)
	return nil
}

func (a *app) searchRadius(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("raio", flag.ExitOnError)
	km := fs.Float64("km", 0, "raio de busca em km")
	fs.Parse(args)

	if err := a.api.UpdateSearchRadius(ctx, *km); err != nil {
		return err
	}
	fmt.Printf("Raio de busca: %.0f km\n", *km)
	return nil
}

func (a *app) reminder(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("aviso", flag.ExitOnError)
	tipo := fs.String("tipo", "24h", "24h ou 2h")
	on := fs.Bool("on", true, "ligado")
	fs.Parse(args)

	which := booking.Reminder24h
	if *tipo == "2h" {
		which = booking.Reminder2h
	}

	shown, err := booking.NewToggleReminder(a.api, a.log).Execute(ctx, which, *on)
	if err != nil {
		fmt.Printf("Não salvou; aviso %s segue %v\n", *tipo, shown)
		return err
	}
	fmt.Printf("Aviso %s: %v\n", *tipo, shown)
	return nil
}

func (a *app) editProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("perfil", flag.ExitOnError)
	nome := fs.String("nome", "", "nome")
	avatar := fs.String("avatar", "", "caminho da foto (opcional)")
	fs.Parse(args)

	in := api.EditProfileInput{Nome: *nome}
	if *avatar != "" {
		f, err := os.Open(*avatar)
		if err != nil {
			return err
		}
		defer f.Close()
		in.AvatarName = *avatar
		in.Avatar = f
	}

	if err := a.api.EditProfile(ctx, in); err != nil {
		return err
	}
	fmt.Println("Perfil atualizado.")
	return nil
}
