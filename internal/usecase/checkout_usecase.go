package usecase

import (
	"context"
	"errors"
	"log"
	"regexp"
	"strings"
	"time"

	"github.com/andressagonsalvespereira/0504MINE/internal/domain/entities"
	"github.com/andressagonsalvespereira/0504MINE/internal/usecase/interfaces"
)

var (
	ErrMissingCustomerFields = errors.New("missing customer name, email or cpf/cnpj")
	ErrInvalidCpfCnpj        = errors.New("invalid cpf/cnpj")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrMissingPaymentMethod  = errors.New("missing payment method")
	ErrChargeNotFound        = errors.New("charge not found")
)

var nonDigits = regexp.MustCompile(`[^\d]`)

// CreateChargeCommand carries the validated checkout form data.
//
// OrderID is optional: a charge without an order is an acceptable degraded state.
// RequestID is an optional client-supplied token used to derive the idempotency
// key when no order id exists.
type CreateChargeCommand struct {
	CustomerName    string
	CustomerEmail   string
	CustomerCpfCnpj string
	CustomerPhone   string
	Amount          float64
	Method          entities.PaymentMethod
	ProductName     string
	OrderID         string
	RequestID       string
}

// ICheckoutUseCase encapsulates the "create customer + charge, persist, present"
// behavior of the checkout flow.

type ICheckoutUseCase interface {
	CreateCharge(ctx context.Context, cmd CreateChargeCommand) (entities.Charge, error)
	GetChargeByID(ctx context.Context, id string) (entities.Charge, error)
	CancelCharge(ctx context.Context, id string) error
}

type CheckoutUseCase struct {
	charges interfaces.IChargeRepository
	orders  interfaces.IOrderRepository
	gateway interfaces.IPaymentGateway
}

var _ ICheckoutUseCase = (*CheckoutUseCase)(nil)

func NewCheckoutUseCase(charges interfaces.IChargeRepository, orders interfaces.IOrderRepository, gateway interfaces.IPaymentGateway) *CheckoutUseCase {
	return &CheckoutUseCase{charges: charges, orders: orders, gateway: gateway}
}

// CreateCharge runs the full charge-creation flow: validate input, reuse an
// existing charge for the derived idempotency key, create a remote customer and
// charge, fetch the PIX presentation best-effort and persist the result.
func (u *CheckoutUseCase) CreateCharge(ctx context.Context, cmd CreateChargeCommand) (entities.Charge, error) {
	log.Printf("[checkout][usecase] create-charge start order_id=%q amount=%.2f method=%s", cmd.OrderID, cmd.Amount, cmd.Method)

	cmd.CustomerName = strings.TrimSpace(cmd.CustomerName)
	cmd.CustomerEmail = strings.TrimSpace(cmd.CustomerEmail)
	cmd.OrderID = strings.TrimSpace(cmd.OrderID)
	cmd.RequestID = strings.TrimSpace(cmd.RequestID)

	if cmd.CustomerName == "" || cmd.CustomerEmail == "" || strings.TrimSpace(cmd.CustomerCpfCnpj) == "" {
		log.Printf("[checkout][usecase] missing customer fields order_id=%q", cmd.OrderID)
		return entities.Charge{}, ErrMissingCustomerFields
	}

	// CPF has 11 digits, CNPJ 14; anything else after scrubbing is invalid and
	// rejected before any gateway call.
	cpfCnpj := nonDigits.ReplaceAllString(cmd.CustomerCpfCnpj, "")
	if len(cpfCnpj) != 11 && len(cpfCnpj) != 14 {
		log.Printf("[checkout][usecase] invalid cpf/cnpj length=%d order_id=%q", len(cpfCnpj), cmd.OrderID)
		return entities.Charge{}, ErrInvalidCpfCnpj
	}
	if cmd.Amount <= 0 {
		return entities.Charge{}, ErrInvalidAmount
	}
	if strings.TrimSpace(string(cmd.Method)) == "" {
		return entities.Charge{}, ErrMissingPaymentMethod
	}
	if u.gateway == nil {
		log.Printf("[checkout][usecase] gateway not configured order_id=%q", cmd.OrderID)
		return entities.Charge{}, errors.New("payment gateway not configured")
	}
	if u.charges == nil {
		return entities.Charge{}, errors.New("charge repository not configured")
	}

	// Retrying a request must not create duplicate remote charges: the key is
	// stable per order (or per client request id) and an existing charge for it
	// is returned without touching the gateway.
	idempotencyKey := cmd.OrderID
	if idempotencyKey == "" {
		idempotencyKey = cmd.RequestID
	}
	if idempotencyKey != "" {
		existing, err := u.charges.GetByIdempotencyKey(ctx, idempotencyKey)
		if err != nil {
			log.Printf("[checkout][usecase] idempotency lookup failed key=%s err=%v", idempotencyKey, err)
			return entities.Charge{}, err
		}
		if existing.ID != "" {
			log.Printf("[checkout][usecase] reusing charge for idempotency key=%s charge_id=%s", idempotencyKey, existing.ID)
			return existing, nil
		}
	}

	phone := nonDigits.ReplaceAllString(cmd.CustomerPhone, "")
	customer, err := u.gateway.CreateCustomer(ctx, interfaces.GatewayCustomerRequest{
		Name:        cmd.CustomerName,
		Email:       cmd.CustomerEmail,
		CpfCnpj:     cpfCnpj,
		MobilePhone: phone,
	})
	if err != nil {
		log.Printf("[checkout][usecase] customer creation failed order_id=%q err=%v", cmd.OrderID, err)
		return entities.Charge{}, err
	}
	log.Printf("[checkout][usecase] customer created customer_id=%s", customer.ID)

	remote, err := u.gateway.CreateCharge(ctx, interfaces.GatewayChargeRequest{
		Customer:          customer.ID,
		BillingType:       string(cmd.Method),
		Value:             cmd.Amount,
		DueDate:           time.Now().UTC().Format("2006-01-02"),
		Description:       cmd.ProductName,
		ExternalReference: cmd.OrderID,
	})
	if err != nil {
		log.Printf("[checkout][usecase] charge creation failed order_id=%q err=%v", cmd.OrderID, err)
		return entities.Charge{}, err
	}
	log.Printf("[checkout][usecase] charge created charge_id=%s provider_status=%s", remote.ID, remote.Status)

	// The QR fetch is best-effort: a failing secondary call degrades the
	// presentation block, never the charge itself.
	qrCode, qrCodeImage, expiration := entities.QRCodeNotAvailable, "", ""
	if cmd.Method == entities.PaymentMethodPix {
		qr, err := u.gateway.GetPixQRCode(ctx, remote.ID)
		if err != nil {
			log.Printf("[checkout][usecase] pix qr fetch failed charge_id=%s err=%v", remote.ID, err)
		} else {
			qrCode = qr.Payload
			qrCodeImage = qr.EncodedImage
			expiration = qr.ExpirationDate
			if qrCode == "" {
				qrCode = entities.QRCodeNotAvailable
			}
		}
	}

	// A non-existent order clears the association instead of failing the whole
	// operation: an orphaned charge is recoverable, a lost charge is not.
	orderID := cmd.OrderID
	if orderID != "" {
		ord, err := u.orders.GetByID(ctx, orderID)
		if err != nil {
			log.Printf("[checkout][usecase] order lookup failed order_id=%s err=%v; clearing association", orderID, err)
			orderID = ""
		} else if ord.ID == "" {
			log.Printf("[checkout][usecase] order not found order_id=%s; clearing association", orderID)
			orderID = ""
		}
	}

	charge := entities.Charge{
		ID:             remote.ID,
		OrderID:        orderID,
		IdempotencyKey: idempotencyKey,
		Amount:         remote.Value,
		Method:         cmd.Method,
		Status:         entities.NormalizeStatus(remote.Status),
		RawStatus:      remote.Status,
		QRCode:         qrCode,
		QRCodeImage:    qrCodeImage,
		ExpirationDate: expiration,
		CreatedAt:      time.Now().UTC(),
	}
	if charge.Amount == 0 {
		charge.Amount = cmd.Amount
	}

	created, err := u.charges.Create(ctx, charge)
	if err != nil {
		log.Printf("[checkout][usecase] charge persist failed charge_id=%s err=%v", charge.ID, err)
		return entities.Charge{}, err
	}

	if orderID != "" {
		if _, err := u.orders.AttachCharge(ctx, orderID, created.ID); err != nil {
			// The charge is already persisted; the webhook falls back to the
			// charge record when the linkage is missing.
			log.Printf("[checkout][usecase] attach charge failed order_id=%s charge_id=%s err=%v", orderID, created.ID, err)
		}
	}

	log.Printf("[checkout][usecase] create-charge success charge_id=%s order_id=%q status=%s", created.ID, created.OrderID, created.Status)
	return created, nil
}

func (u *CheckoutUseCase) GetChargeByID(ctx context.Context, id string) (entities.Charge, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Charge{}, ErrChargeNotFound
	}
	c, err := u.charges.GetByID(ctx, id)
	if err != nil {
		return entities.Charge{}, err
	}
	if c.ID == "" {
		return entities.Charge{}, ErrChargeNotFound
	}
	return c, nil
}

// CancelCharge forwards the cancellation to the gateway. The gateway owns
// settlement; local records keep their last observed status until the webhook
// reports the cancellation.
func (u *CheckoutUseCase) CancelCharge(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrChargeNotFound
	}
	if u.gateway == nil {
		return errors.New("payment gateway not configured")
	}
	_, err := u.gateway.CancelCharge(ctx, id)
	if err != nil {
		log.Printf("[checkout][usecase] cancel failed charge_id=%s err=%v", id, err)
	}
	return err
}
