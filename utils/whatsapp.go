package utils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/shopspring/decimal"
)

// SendWhatsAppNotification mengirim notifikasi WhatsApp menggunakan API dari fonnte.com
func SendWhatsAppNotification(phone, message string) error {
	apiURL := "https://api.fonnte.com/send"
	token := os.Getenv("FONNTE_TOKEN") // Ambil dari environment variable

	if token == "" {
		return fmt.Errorf("FONNTE_TOKEN tidak ditemukan di environment")
	}

	payload := map[string]string{
		"target":  phone,
		"message": message,
	}

	jsonData, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("gagal marshal JSON: %v", err)
	}

	req, err := http.NewRequest("POST", apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("gagal membuat request: %v", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", token)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("gagal mengirim request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API mengembalikan status: %d", resp.StatusCode)
	}

	return nil
}

// FormatCheckoutMessage memformat ringkasan checkout utk customer.
func FormatCheckoutMessage(customerName string, grandTotal decimal.Decimal, items []string) string {
	message := "CHECKOUT BERHASIL\n\n"
	message += fmt.Sprintf("Halo %s, pesanan sewamu sudah dibuat.\n", customerName)
	message += fmt.Sprintf("Total Pembayaran: Rp %s\n\n", grandTotal.StringFixed(0))
	message += "*Barang:*\n"

	for i, item := range items {
		message += fmt.Sprintf("%d. %s\n", i+1, item)
	}

	message += "\nSegera lakukan pembayaran dari wallet kamu ya."
	message += fmt.Sprintf("\n_Waktu: %s_", time.Now().Format("02/01/2006 15:04:05"))

	return message
}

// FormatPaymentMessage memformat bukti pembayaran wallet.
func FormatPaymentMessage(customerName, status string, totalPaid decimal.Decimal, numbers []string) string {
	message := "PEMBAYARAN SEWA\n\n"
	message += fmt.Sprintf("Halo %s\n", customerName)
	message += fmt.Sprintf("Status: %s\n", status)
	message += fmt.Sprintf("Total Dibayar: Rp %s\n\n", totalPaid.StringFixed(0))
	message += "*Nomor Transaksi:*\n"

	for i, number := range numbers {
		message += fmt.Sprintf("%d. %s\n", i+1, number)
	}

	message += fmt.Sprintf("\n_Waktu: %s_", time.Now().Format("02/01/2006 15:04:05"))

	return message
}
